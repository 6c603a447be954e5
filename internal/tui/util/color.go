package util

import (
    "os"

    "github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
    if explicit {
        return true
    }
    return os.Getenv("NO_COLOR") != ""
}

// Palette defines a small set of colors used across widgets.
type Palette struct {
    Primary   lipgloss.Color
    Success   lipgloss.Color
    Danger    lipgloss.Color
    Warning   lipgloss.Color
    Muted     lipgloss.Color
    MutedDark lipgloss.Color
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
    return Palette{
        Primary:   lipgloss.Color("#3D6DFF"),
        Success:   lipgloss.Color("#2AA876"),
        Danger:    lipgloss.Color("#D9534F"),
        Warning:   lipgloss.Color("#F0AD4E"),
        Muted:     lipgloss.Color("#6C757D"),
        MutedDark: lipgloss.Color("#5A5A5A"),
    }
}

// Styles are the lipgloss styles shared by the widgets.
type Styles struct {
    Title     lipgloss.Style
    MenuBar   lipgloss.Style
    MenuOpen  lipgloss.Style
    MenuItem  lipgloss.Style
    MenuSel   lipgloss.Style
    Status    lipgloss.Style
    Caret     lipgloss.Style
    Selection lipgloss.Style
    Dialog    lipgloss.Style
    ErrorText lipgloss.Style
    Faint     lipgloss.Style
    Added     lipgloss.Style
    Removed   lipgloss.Style
}

// NewStyles builds Styles from p. With noColor only attributes (bold,
// reverse, faint) are used.
func NewStyles(p Palette, noColor bool) Styles {
    base := lipgloss.NewStyle()
    s := Styles{
        Title:     base.Bold(true),
        MenuBar:   base.Reverse(true),
        MenuOpen:  base.Bold(true).Underline(true),
        MenuItem:  base,
        MenuSel:   base.Reverse(true),
        Status:    base.Reverse(true),
        Caret:     base.Reverse(true),
        Selection: base.Reverse(true),
        Dialog:    base.Border(lipgloss.RoundedBorder()).Padding(0, 1),
        ErrorText: base.Bold(true),
        Faint:     base.Faint(true),
        Added:     base,
        Removed:   base,
    }
    if noColor {
        return s
    }
    white := lipgloss.Color("#FFFFFF")
    s.MenuBar = base.Background(p.MutedDark).Foreground(white)
    s.MenuOpen = base.Background(p.Primary).Foreground(white).Bold(true)
    s.MenuSel = base.Background(p.Primary).Foreground(white)
    s.Status = base.Background(p.Muted).Foreground(white)
    s.Selection = base.Background(p.Primary).Foreground(white)
    s.Dialog = s.Dialog.BorderForeground(p.Primary)
    s.ErrorText = base.Foreground(p.Danger).Bold(true)
    s.Added = base.Foreground(p.Success)
    s.Removed = base.Foreground(p.Danger)
    return s
}
