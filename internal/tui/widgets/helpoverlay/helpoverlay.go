package helpoverlay

import (
    "strings"

    "github.com/charmbracelet/bubbles/help"

    "textedit/internal/tui/state"
    "textedit/internal/tui/util"
)

type HelpOverlay struct {
    help   help.Model
    Styles util.Styles
}

func NewHelpOverlay(styles util.Styles) HelpOverlay {
    h := help.New()
    h.ShowAll = true
    return HelpOverlay{help: h, Styles: styles}
}

// View returns the grouped shortcut list inside a bordered box.
func (o HelpOverlay) View(keys help.KeyMap, s state.UIState) string {
    o.help.Width = max(s.Width-4, 20)
    var b strings.Builder
    b.WriteString(o.Styles.Title.Render("Keyboard shortcuts"))
    b.WriteString("\n\n")
    b.WriteString(o.help.View(keys))
    b.WriteString("\n\n")
    b.WriteString(o.Styles.Faint.Render("any key closes this help"))
    return o.Styles.Dialog.Render(b.String())
}

// Hint renders the one-line short help used in the status bar.
func (o HelpOverlay) Hint(keys help.KeyMap) string {
    h := o.help
    h.ShowAll = false
    return h.ShortHelpView(keys.ShortHelp())
}
