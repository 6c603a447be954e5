package diff

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/x/ansi"
    dmp "github.com/sergi/go-diff/diffmatchpatch"

    "textedit/internal/tui/util"
)

type DiffView struct {
    Styles util.Styles
}

func NewDiffView(styles util.Styles) DiffView { return DiffView{Styles: styles} }

// Line is one changed line of a line-level diff.
type Line struct {
    Op   dmp.Operation
    Text string
}

// Lines diffs saved against current line by line and returns only the
// inserted and deleted lines, in order.
func Lines(saved, current string) []Line {
    d := dmp.New()
    a, b, table := d.DiffLinesToChars(saved, current)
    diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), table)
    var out []Line
    for _, df := range diffs {
        if df.Type == dmp.DiffEqual {
            continue
        }
        for _, l := range splitKeep(df.Text) {
            out = append(out, Line{Op: df.Type, Text: l})
        }
    }
    return out
}

func splitKeep(s string) []string {
    s = strings.TrimSuffix(s, "\n")
    return strings.Split(s, "\n")
}

// Summary counts inserted and deleted lines.
func Summary(saved, current string) (added, removed int) {
    for _, l := range Lines(saved, current) {
        switch l.Op {
        case dmp.DiffInsert:
            added++
        case dmp.DiffDelete:
            removed++
        }
    }
    return added, removed
}

// View renders a short unified preview of unsaved changes, at most limit
// lines, each clipped to width cells.
func (v DiffView) View(saved, current string, limit, width int) string {
    lines := Lines(saved, current)
    if len(lines) == 0 {
        return v.Styles.Faint.Render("No line changes")
    }
    added, removed := Summary(saved, current)
    var b strings.Builder
    fmt.Fprintf(&b, "%s\n", v.Styles.Faint.Render(fmt.Sprintf("%d line(s) added, %d removed", added, removed)))
    for i, l := range lines {
        if i == limit {
            fmt.Fprintf(&b, "%s\n", v.Styles.Faint.Render(fmt.Sprintf("… %d more", len(lines)-limit)))
            break
        }
        text := clip(l.Text, width-2)
        if l.Op == dmp.DiffInsert {
            b.WriteString(v.Styles.Added.Render("+ " + text))
        } else {
            b.WriteString(v.Styles.Removed.Render("- " + text))
        }
        b.WriteString("\n")
    }
    return strings.TrimSuffix(b.String(), "\n")
}

// clip cuts s to width cells.
func clip(s string, width int) string {
    if width < 1 {
        return s
    }
    return ansi.Truncate(s, width, "…")
}
