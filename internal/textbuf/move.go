package textbuf

func (b *Buffer) MoveLeft(extend bool) {
	if r, ok := b.Selection(); ok && !extend {
		b.SetCaret(r.Start, false)
		return
	}
	c := b.caret
	switch {
	case c.Col > 0:
		c.Col--
	case c.Line > 0:
		c.Line--
		c.Col = b.lineLen(c.Line)
	}
	b.SetCaret(c, extend)
}

func (b *Buffer) MoveRight(extend bool) {
	if r, ok := b.Selection(); ok && !extend {
		b.SetCaret(r.End, false)
		return
	}
	c := b.caret
	switch {
	case c.Col < b.lineLen(c.Line):
		c.Col++
	case c.Line < len(b.lines)-1:
		c.Line++
		c.Col = 0
	}
	b.SetCaret(c, extend)
}

func (b *Buffer) MoveUp(extend bool) { b.moveLines(-1, extend) }

func (b *Buffer) MoveDown(extend bool) { b.moveLines(1, extend) }

// PageUp and PageDown move by n lines.
func (b *Buffer) PageUp(n int, extend bool) { b.moveLines(-max(n, 1), extend) }

func (b *Buffer) PageDown(n int, extend bool) { b.moveLines(max(n, 1), extend) }

func (b *Buffer) moveLines(delta int, extend bool) {
	goal := b.goalCol
	if goal < 0 {
		goal = b.caret.Col
	}
	line := clampInt(b.caret.Line+delta, 0, len(b.lines)-1)
	switch {
	case b.caret.Line+delta < 0:
		goal = 0
	case b.caret.Line+delta > len(b.lines)-1:
		goal = b.lineLen(line)
	}
	b.moveTo(Pos{Line: line, Col: clampInt(goal, 0, b.lineLen(line))}, extend)
	b.goalCol = goal
}

func (b *Buffer) LineStart(extend bool) {
	b.SetCaret(Pos{Line: b.caret.Line}, extend)
}

func (b *Buffer) LineEnd(extend bool) {
	b.SetCaret(Pos{Line: b.caret.Line, Col: b.lineLen(b.caret.Line)}, extend)
}

func (b *Buffer) DocStart(extend bool) { b.SetCaret(Pos{}, extend) }

func (b *Buffer) DocEnd(extend bool) {
	last := len(b.lines) - 1
	b.SetCaret(Pos{Line: last, Col: b.lineLen(last)}, extend)
}
