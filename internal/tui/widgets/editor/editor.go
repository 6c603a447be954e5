package editor

import (
    "strings"
    "unicode"

    "github.com/mattn/go-runewidth"

    "textedit/internal/textbuf"
    "textedit/internal/tui/util"
)

// Row is one screen row of a soft-wrapped logical line: runes [Start, End) of Line.
type Row struct {
    Line  int
    Start int
    End   int
    Last  bool // final row of its line
}

type Editor struct {
    TabWidth int
    Styles   util.Styles
}

func NewEditor(tabWidth int, styles util.Styles) Editor {
    if tabWidth < 1 {
        tabWidth = 4
    }
    return Editor{TabWidth: tabWidth, Styles: styles}
}

// cellWidth is the number of cells rune r takes when it starts at cell col.
func (e Editor) cellWidth(r rune, col int) int {
    if r == '\t' {
        return e.TabWidth - col%e.TabWidth
    }
    if unicode.IsControl(r) {
        return 1
    }
    return runewidth.RuneWidth(r)
}

// Layout wraps every line of buf to width cells, breaking after the last
// blank that fits and inside a word only when the word alone overflows. One
// cell is kept free at the right edge so a caret after the last rune stays
// on screen.
func (e Editor) Layout(buf *textbuf.Buffer, width int) []Row {
    wrap := max(width-1, 1)
    rows := make([]Row, 0, buf.LineCount())
    for i := 0; i < buf.LineCount(); i++ {
        line := buf.Line(i)
        start, used, blank := 0, 0, -1 // blank: index just after the last blank in the row
        for j, r := range line {
            w := e.cellWidth(r, used)
            if used > 0 && used+w > wrap {
                brk := j
                if blank > start {
                    if rest := e.span(line, blank, j); rest+e.cellWidth(r, rest) <= wrap {
                        brk = blank
                    }
                }
                rows = append(rows, Row{Line: i, Start: start, End: brk})
                start, blank = brk, -1
                used = e.span(line, start, j)
                w = e.cellWidth(r, used)
            }
            used += w
            if r == ' ' || r == '\t' {
                blank = j + 1
            }
        }
        rows = append(rows, Row{Line: i, Start: start, End: len(line), Last: true})
    }
    return rows
}

// span is the cell width of line[from:to] laid out from the start of a row.
func (e Editor) span(line []rune, from, to int) int {
    used := 0
    for k := from; k < to; k++ {
        used += e.cellWidth(line[k], used)
    }
    return used
}

// RowOf returns the index of the row showing p.
func RowOf(rows []Row, p textbuf.Pos) int {
    for i, r := range rows {
        if r.Line != p.Line {
            continue
        }
        if p.Col < r.End || (p.Col == r.End && r.Last) {
            return i
        }
    }
    if len(rows) == 0 {
        return 0
    }
    return len(rows) - 1
}

// HitTest maps a cell (x, y) of the visible area, scrolled by top rows, to a buffer position.
func (e Editor) HitTest(buf *textbuf.Buffer, rows []Row, top, x, y int) textbuf.Pos {
    if len(rows) == 0 {
        return textbuf.Pos{}
    }
    idx := min(max(top+y, 0), len(rows)-1)
    r := rows[idx]
    line := buf.Line(r.Line)
    used := 0
    for j := r.Start; j < r.End; j++ {
        w := e.cellWidth(line[j], used)
        if x < used+w {
            return textbuf.Pos{Line: r.Line, Col: j}
        }
        used += w
    }
    if !r.Last && r.End > r.Start {
        // the end of a wrapped row is the first rune of the next one
        return textbuf.Pos{Line: r.Line, Col: r.End - 1}
    }
    return textbuf.Pos{Line: r.Line, Col: r.End}
}

type cellKind int

const (
    plain cellKind = iota
    selected
    caret
)

// View renders height rows starting at top. The caret is drawn only when showCaret is set.
func (e Editor) View(buf *textbuf.Buffer, rows []Row, top, height int, showCaret bool) string {
    sel, hasSel := buf.Selection()
    cur := buf.Caret()
    out := make([]string, 0, height)
    for i := top; i < top+height; i++ {
        if i < 0 || i >= len(rows) {
            out = append(out, e.Styles.Faint.Render("~"))
            continue
        }
        out = append(out, e.renderRow(buf, rows[i], sel, hasSel, cur, showCaret))
    }
    return strings.Join(out, "\n")
}

func (e Editor) renderRow(buf *textbuf.Buffer, r Row, sel textbuf.Range, hasSel bool, cur textbuf.Pos, showCaret bool) string {
    line := buf.Line(r.Line)
    var b, run strings.Builder
    kind := plain
    flush := func() {
        if run.Len() == 0 {
            return
        }
        switch kind {
        case selected:
            b.WriteString(e.Styles.Selection.Render(run.String()))
        case caret:
            b.WriteString(e.Styles.Caret.Render(run.String()))
        default:
            b.WriteString(run.String())
        }
        run.Reset()
    }
    used := 0
    for j := r.Start; j < r.End; j++ {
        p := textbuf.Pos{Line: r.Line, Col: j}
        k := plain
        if showCaret && p == cur {
            k = caret
        } else if hasSel && textbuf.ComparePos(p, sel.Start) >= 0 && textbuf.ComparePos(p, sel.End) < 0 {
            k = selected
        }
        if k != kind {
            flush()
            kind = k
        }
        rn := line[j]
        w := e.cellWidth(rn, used)
        switch {
        case rn == '\t':
            run.WriteString(strings.Repeat(" ", w))
        case unicode.IsControl(rn):
            run.WriteRune('?')
        default:
            run.WriteRune(rn)
        }
        used += w
    }
    flush()
    if showCaret && cur.Line == r.Line && cur.Col == r.End && r.Last {
        b.WriteString(e.Styles.Caret.Render(" "))
    }
    return b.String()
}
