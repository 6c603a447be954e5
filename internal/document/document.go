// Package document holds the file-backed side of an editor window: the
// associated path, the modified flag, and whole-file load and save.
package document

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

const (
	AppTitle     = "Text Editor"
	UntitledName = "Untitled"
	DirtyMarker  = " *"
)

// Document is the file state of one window. The text itself lives in the
// window's text buffer.
type Document struct {
	Path     string // empty means untitled
	Modified bool
}

func New(path string) *Document { return &Document{Path: path} }

func (d *Document) HasPath() bool { return d.Path != "" }

// BaseName is the file name shown in the title.
func (d *Document) BaseName() string {
	if d.Path == "" {
		return UntitledName
	}
	return filepath.Base(d.Path)
}

// Title is "Text Editor - <name>" with a trailing marker while modified.
func (d *Document) Title() string {
	t := AppTitle + " - " + d.BaseName()
	if d.Modified {
		t += DirtyMarker
	}
	return t
}

func (d *Document) MarkModified() { d.Modified = true }

func (d *Document) MarkClean() { d.Modified = false }

// Load reads the whole file at path as UTF-8 and normalises CRLF to LF.
func Load(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(transform.NewReader(f, encoding.UTF8Validator))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

// Save writes contents to path as UTF-8, dropping exactly one trailing line
// feed (the text surface terminator) if present.
func Save(path, contents string) (err error) {
	contents = strings.TrimSuffix(contents, "\n")

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := transform.NewWriter(f, encoding.UTF8Validator)
	if _, err = io.WriteString(w, contents); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WithDefaultExt appends ext when name has no extension.
func WithDefaultExt(name, ext string) string {
	if ext == "" || filepath.Ext(name) != "" {
		return name
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return name + ext
}
