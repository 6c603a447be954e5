package state

// Focus names the layer that receives keys in a window.
type Focus int

const (
    EDITING Focus = iota
    MENU
    PROMPT
    DIALOG
    HELP
)

// UIState holds per-window UI state shared by the status bar, menu bar and editor view.
type UIState struct {
    Focus Focus

    // Caret as last reported to the status line, 1-based.
    Line int
    Col  int

    // Status replaces the caret report until the next key or click (e.g. "Saved: ...").
    Status string

    // Layout
    Width  int
    Height int

    // Menu bar
    Menu     int // open menu index
    MenuItem int // highlighted item in the open menu

    NoColor bool
}

// New returns the state of a fresh window: caret at Ln 1, Col 1.
func New() UIState {
    return UIState{Line: 1, Col: 1}
}
