// Package clip is the clipboard behind Cut, Copy and Paste.
package clip

import (
	"log"

	"github.com/atotto/clipboard"
)

// Clipboard reads and writes plain text.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// Memory is an in-process clipboard shared by all windows.
type Memory struct{ text string }

func (m *Memory) ReadText() (string, error) { return m.text, nil }

func (m *Memory) WriteText(s string) error {
	m.text = s
	return nil
}

// System uses the OS clipboard and keeps a Memory copy for when the OS
// clipboard is unavailable (headless sessions, missing xclip/xsel).
type System struct {
	fallback Memory
}

func (s *System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return s.fallback.ReadText()
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		log.Printf("clipboard: read: %v", err)
		return s.fallback.ReadText()
	}
	return text, nil
}

func (s *System) WriteText(text string) error {
	_ = s.fallback.WriteText(text)
	if clipboard.Unsupported {
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		log.Printf("clipboard: write: %v", err)
	}
	return nil
}

// New returns the system clipboard, or an in-process one when mode is "memory".
func New(mode string) Clipboard {
	if mode == "memory" {
		return &Memory{}
	}
	return &System{}
}
