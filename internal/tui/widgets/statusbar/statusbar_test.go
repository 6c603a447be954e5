package statusbar

import (
    "strings"
    "testing"

    "github.com/charmbracelet/x/ansi"

    "textedit/internal/tui/state"
    "textedit/internal/tui/util"
)

func TestViewReportsCaret(t *testing.T) {
    b := NewStatusBar(util.NewStyles(util.DefaultPalette(), true))
    s := state.Resize(state.ReportCaret(state.New(), 4, 9), 40, 10)
    out := ansi.Strip(b.View(s, "F1 Help"))
    if !strings.Contains(out, "Ln 5, Col 10") || !strings.Contains(out, "F1 Help") {
        t.Fatalf("unexpected status %q", out)
    }
    if w := ansi.StringWidth(out); w != 40 {
        t.Fatalf("width=%d", w)
    }
}

func TestViewDropsHintWhenNarrow(t *testing.T) {
    b := NewStatusBar(util.NewStyles(util.DefaultPalette(), true))
    s := state.Resize(state.ReportSaved(state.New(), "/tmp/a.txt"), 20, 10)
    out := ansi.Strip(b.View(s, "F1 Help"))
    if strings.Contains(out, "F1 Help") {
        t.Fatalf("hint should be dropped: %q", out)
    }
    if !strings.Contains(out, "Saved: /tmp/a.txt") {
        t.Fatalf("unexpected status %q", out)
    }
}
