package menubar

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/x/ansi"

    "textedit/internal/tui/state"
    "textedit/internal/tui/util"
)

// Item is one entry of a drop-down. RuleAbove draws a separator before it.
type Item struct {
    Label     string
    Shortcut  string
    RuleAbove bool
}

type Menu struct {
    Title string
    Items []Item
}

type MenuBar struct {
    Styles util.Styles
}

func NewMenuBar(styles util.Styles) MenuBar { return MenuBar{Styles: styles} }

func label(m Menu) string { return " " + m.Title + " " }

// Offset is the cell column where menu i's label starts.
func Offset(menus []Menu, i int) int {
    x := 0
    for j := 0; j < i && j < len(menus); j++ {
        x += ansi.StringWidth(label(menus[j]))
    }
    return x
}

// Bar renders the top row: menu titles on the left, window title on the right.
func (b MenuBar) Bar(menus []Menu, s state.UIState, title string) string {
    var left strings.Builder
    for i, m := range menus {
        l := label(m)
        if s.Focus == state.MENU && s.Menu == i {
            left.WriteString(b.Styles.MenuOpen.Render(l))
        } else {
            left.WriteString(b.Styles.MenuBar.Render(l))
        }
    }
    used := ansi.StringWidth(left.String())
    rest := max(s.Width-used, 0)
    t := title + " "
    if ansi.StringWidth(t) > rest {
        t = ansi.Truncate(t, rest, "…")
    }
    pad := rest - ansi.StringWidth(t)
    return left.String() + b.Styles.MenuBar.Render(strings.Repeat(" ", pad)+t)
}

// Dropdown renders the open menu as a list of lines, each of equal width.
func (b MenuBar) Dropdown(m Menu, s state.UIState) []string {
    lw, sw := 0, 0
    for _, it := range m.Items {
        lw = max(lw, ansi.StringWidth(it.Label))
        sw = max(sw, ansi.StringWidth(it.Shortcut))
    }
    inner := lw + 2 + sw
    lines := make([]string, 0, len(m.Items)+2)
    lines = append(lines, b.Styles.MenuItem.Render("┌"+strings.Repeat("─", inner+2)+"┐"))
    for i, it := range m.Items {
        if it.RuleAbove && i > 0 {
            lines = append(lines, b.Styles.MenuItem.Render("├"+strings.Repeat("─", inner+2)+"┤"))
        }
        text := fmt.Sprintf(" %-*s  %*s ", lw, it.Label, sw, it.Shortcut)
        if i == s.MenuItem {
            text = b.Styles.MenuSel.Render(text)
        } else {
            text = b.Styles.MenuItem.Render(text)
        }
        lines = append(lines, "│"+text+"│")
    }
    lines = append(lines, b.Styles.MenuItem.Render("└"+strings.Repeat("─", inner+2)+"┘"))
    return lines
}
