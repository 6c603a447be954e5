package state

import "fmt"

// ReportCaret records a 0-based caret for display as 1-based and clears any status override.
func ReportCaret(s UIState, line, col int) UIState {
    s.Line = max(line, 0) + 1
    s.Col = max(col, 0) + 1
    s.Status = ""
    return s
}

// ReportSaved replaces the caret report with a save confirmation.
func ReportSaved(s UIState, path string) UIState {
    s.Status = "Saved: " + path
    return s
}

// StatusText is the text of the status line.
func StatusText(s UIState) string {
    if s.Status != "" {
        return s.Status
    }
    return fmt.Sprintf("Ln %d, Col %d", s.Line, s.Col)
}

// Resize stores the terminal size, never below 1x1.
func Resize(s UIState, width, height int) UIState {
    s.Width = max(width, 1)
    s.Height = max(height, 1)
    return s
}

// OpenMenu focuses the menu bar on menu i with its first item highlighted.
func OpenMenu(s UIState, i, menus int) UIState {
    if menus <= 0 {
        return s
    }
    s.Focus = MENU
    s.Menu = ((i % menus) + menus) % menus
    s.MenuItem = 0
    return s
}

// MoveMenu switches to the neighbouring menu, wrapping around.
func MoveMenu(s UIState, delta, menus int) UIState {
    return OpenMenu(s, s.Menu+delta, menus)
}

// MoveMenuItem moves the highlight within the open menu, wrapping around.
func MoveMenuItem(s UIState, delta, items int) UIState {
    if items <= 0 {
        return s
    }
    s.MenuItem = (((s.MenuItem + delta) % items) + items) % items
    return s
}

// CloseMenu returns focus to the text surface.
func CloseMenu(s UIState) UIState {
    s.Focus = EDITING
    return s
}

// ToggleHelp shows or hides the shortcut overlay.
func ToggleHelp(s UIState) UIState {
    if s.Focus == HELP {
        s.Focus = EDITING
    } else {
        s.Focus = HELP
    }
    return s
}
