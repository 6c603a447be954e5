package textbuf

import "strings"

// Options tunes a Buffer. Zero values pick defaults.
type Options struct {
	HistoryLimit int // default 1000; negative disables undo
}

// Buffer is the text surface model: lines, caret, selection, undo history
// and an edge-triggered modified latch.
type Buffer struct {
	lines [][]rune

	caret     Pos
	anchor    Pos
	selecting bool
	goalCol   int // preferred column for vertical moves, -1 when unset

	opt  Options
	hist history

	modified bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines:   splitLines(text),
		goalCol: -1,
		opt:     opt,
	}
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	out := make([][]rune, len(parts))
	for i, p := range parts {
		out[i] = []rune(p)
	}
	return out
}

// Text returns the logical document text.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Contents returns the text terminated by one line feed. Every buffer ends
// in a line terminator that is not part of the logical document; callers
// writing files strip it.
func (b *Buffer) Contents() string { return b.Text() + "\n" }

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns line i as runes. The slice must not be modified.
func (b *Buffer) Line(i int) []rune {
	if i < 0 || i >= len(b.lines) {
		return nil
	}
	return b.lines[i]
}

func (b *Buffer) lineLen(i int) int { return len(b.lines[i]) }

func (b *Buffer) clamp(p Pos) Pos {
	line := clampInt(p.Line, 0, len(b.lines)-1)
	return Pos{Line: line, Col: clampInt(p.Col, 0, b.lineLen(line))}
}

// Reset replaces the whole text, moves the caret to the start, drops the
// selection and history. It does not raise the modified latch.
func (b *Buffer) Reset(text string) {
	b.lines = splitLines(text)
	b.caret = Pos{}
	b.selecting = false
	b.goalCol = -1
	b.hist = history{}
	b.modified = false
}

// EditModified reports whether content changed since the last ResetModified.
func (b *Buffer) EditModified() bool { return b.modified }

// ResetModified re-arms the latch so the next change raises it again.
func (b *Buffer) ResetModified() { b.modified = false }

func (b *Buffer) Caret() Pos { return b.caret }

// SetCaret moves the caret. With extend the selection grows from the
// current anchor (set to the old caret if none is active).
func (b *Buffer) SetCaret(p Pos, extend bool) {
	b.moveTo(b.clamp(p), extend)
	b.goalCol = -1
}

func (b *Buffer) moveTo(p Pos, extend bool) {
	if extend {
		if !b.selecting {
			b.anchor = b.caret
			b.selecting = true
		}
	} else {
		b.selecting = false
	}
	if p != b.caret {
		b.hist.seal()
	}
	b.caret = p
}

// Selection returns the normalised selection, if any.
func (b *Buffer) Selection() (Range, bool) {
	if !b.selecting || b.anchor == b.caret {
		return Range{}, false
	}
	return NormalizeRange(Range{Start: b.anchor, End: b.caret}), true
}

func (b *Buffer) ClearSelection() { b.selecting = false }

// SelectAll selects the whole document and puts the caret at the end.
func (b *Buffer) SelectAll() {
	b.SetCaret(Pos{}, false)
	last := len(b.lines) - 1
	b.SetCaret(Pos{Line: last, Col: b.lineLen(last)}, true)
}

// SelectedText returns the selected text or "".
func (b *Buffer) SelectedText() string {
	r, ok := b.Selection()
	if !ok {
		return ""
	}
	return b.slice(r)
}

func (b *Buffer) slice(r Range) string {
	if r.Start.Line == r.End.Line {
		return string(b.lines[r.Start.Line][r.Start.Col:r.End.Col])
	}
	var sb strings.Builder
	sb.WriteString(string(b.lines[r.Start.Line][r.Start.Col:]))
	for i := r.Start.Line + 1; i < r.End.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(string(b.lines[i]))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.lines[r.End.Line][:r.End.Col]))
	return sb.String()
}
