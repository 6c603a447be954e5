package statusbar

import (
    "strings"

    "github.com/charmbracelet/x/ansi"

    "textedit/internal/tui/state"
    "textedit/internal/tui/util"
)

type StatusBar struct {
    Styles util.Styles
}

func NewStatusBar(styles util.Styles) StatusBar { return StatusBar{Styles: styles} }

// View renders the status line: caret report (or save notice) on the left,
// hint on the right, padded to s.Width.
func (b StatusBar) View(s state.UIState, hint string) string {
    left := " " + state.StatusText(s)
    right := hint + " "
    return b.Styles.Status.Render(spread(left, right, s.Width))
}

// spread places left and right on one line of exactly width cells,
// dropping the right part first when space runs out.
func spread(left, right string, width int) string {
    lw, rw := ansi.StringWidth(left), ansi.StringWidth(right)
    if lw+rw+1 > width {
        right, rw = "", 0
    }
    if lw > width {
        return ansi.Truncate(left, width, "…")
    }
    return left + strings.Repeat(" ", width-lw-rw) + right
}
