package textbuf

import (
	"strings"
	"unicode"
)

// InsertText inserts s at the caret, replacing the selection if any.
// CRLF pairs are stored as LF.
func (b *Buffer) InsertText(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	b.edit(b.selectionOrCaret(), s, kindInsert)
}

// InsertRune types a single rune. Consecutive typed runes share one undo
// record until a space is typed or the caret moves.
func (b *Buffer) InsertRune(r rune) {
	if r == '\n' {
		b.Newline()
		return
	}
	k := kindTyping
	if unicode.IsSpace(r) {
		k = kindTypingSpace
	}
	b.edit(b.selectionOrCaret(), string(r), k)
}

func (b *Buffer) Newline() {
	b.edit(b.selectionOrCaret(), "\n", kindInsert)
}

// Backspace deletes the selection, or the rune (or line break) before the caret.
func (b *Buffer) Backspace() {
	if b.DeleteSelection() {
		return
	}
	c := b.caret
	switch {
	case c.Col > 0:
		b.edit(Range{Start: Pos{Line: c.Line, Col: c.Col - 1}, End: c}, "", kindDelete)
	case c.Line > 0:
		prev := c.Line - 1
		b.edit(Range{Start: Pos{Line: prev, Col: b.lineLen(prev)}, End: c}, "", kindDelete)
	}
}

// DeleteForward deletes the selection, or the rune (or line break) after the caret.
func (b *Buffer) DeleteForward() {
	if b.DeleteSelection() {
		return
	}
	c := b.caret
	switch {
	case c.Col < b.lineLen(c.Line):
		b.edit(Range{Start: c, End: Pos{Line: c.Line, Col: c.Col + 1}}, "", kindDelete)
	case c.Line < len(b.lines)-1:
		b.edit(Range{Start: c, End: Pos{Line: c.Line + 1}}, "", kindDelete)
	}
}

// DeleteSelection removes the selected text. It reports whether anything
// was selected.
func (b *Buffer) DeleteSelection() bool {
	r, ok := b.Selection()
	if !ok {
		return false
	}
	b.edit(r, "", kindDelete)
	return true
}

// Cut removes the selection and returns it. Without a selection it returns
// "" and changes nothing.
func (b *Buffer) Cut() string {
	s := b.SelectedText()
	if s == "" {
		return ""
	}
	b.DeleteSelection()
	return s
}

func (b *Buffer) selectionOrCaret() Range {
	if r, ok := b.Selection(); ok {
		return r
	}
	return Range{Start: b.caret, End: b.caret}
}

func (b *Buffer) edit(r Range, text string, k editKind) {
	if r.IsEmpty() && text == "" {
		return
	}
	caretBefore := b.caret
	textBefore := b.Text()

	b.caret = b.replaceRange(r, text)
	b.selecting = false
	b.goalCol = -1
	b.modified = true

	if b.opt.HistoryLimit > 0 {
		b.hist.record(textBefore, b.Text(), caretBefore, b.caret, k, b.opt.HistoryLimit)
	}
}

// replaceRange swaps r for text and returns the position right after the
// inserted text.
func (b *Buffer) replaceRange(r Range, text string) Pos {
	head := b.lines[r.Start.Line][:r.Start.Col]
	tail := b.lines[r.End.Line][r.End.Col:]

	repl := splitLines(text)
	repl[0] = append(append([]rune(nil), head...), repl[0]...)
	last := len(repl) - 1
	end := Pos{Line: r.Start.Line + last, Col: len(repl[last])}
	repl[last] = append(repl[last], tail...)

	out := make([][]rune, 0, len(b.lines)-(r.End.Line-r.Start.Line)+last)
	out = append(out, b.lines[:r.Start.Line]...)
	out = append(out, repl...)
	out = append(out, b.lines[r.End.Line+1:]...)
	b.lines = out
	return end
}
