package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"textedit/internal/clip"
	"textedit/internal/config"
	"textedit/internal/tui/state"
)

func newTestModel(t *testing.T, path string) *model {
	t.Helper()
	cfg := config.Default()
	cfg.Clipboard = "memory"
	cfg.NoColor = true
	m := newModel(cfg, clip.New(cfg.Clipboard))
	m.addWindow(path)
	return m
}

func send(m *model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func typed(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func keyOf(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

// answerPrompt answers the open file prompt with path.
func answerPrompt(t *testing.T, m *model, path string) tea.Cmd {
	t.Helper()
	w := m.current()
	if w.prompt == nil {
		t.Fatalf("expected a file prompt")
	}
	w.prompt.setValue(path)
	return send(m, keyOf(tea.KeyEnter))
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestTypeAndSaveAsWritesExactText(t *testing.T) {
	m := newTestModel(t, "")
	send(m, typed("hello"), keyOf(tea.KeyCtrlS))

	path := filepath.Join(t.TempDir(), "a.txt")
	answerPrompt(t, m, path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "hello" {
		t.Fatalf("file = %q, want %q", data, "hello")
	}
	w := m.current()
	if w.doc.Path != path || w.doc.Modified {
		t.Fatalf("doc = %+v", *w.doc)
	}
	if got := w.doc.Title(); got != "Text Editor - a.txt" {
		t.Fatalf("title = %q", got)
	}
	if got := w.ui.Status; got != "Saved: "+path {
		t.Fatalf("status = %q", got)
	}

	// a new window loads the same path fresh from disk
	send(m, keyOf(tea.KeyCtrlN))
	if len(m.windows) != 2 || m.focus != 1 {
		t.Fatalf("windows=%d focus=%d", len(m.windows), m.focus)
	}
	if got := m.current().buf.Text(); got != "hello" {
		t.Fatalf("new window text = %q", got)
	}
}

func TestSaveAsAppendsDefaultExtension(t *testing.T) {
	m := newTestModel(t, "")
	send(m, typed("x"), keyOf(tea.KeyCtrlS))
	base := filepath.Join(t.TempDir(), "notes")
	answerPrompt(t, m, base)
	if _, err := os.Stat(base + ".txt"); err != nil {
		t.Fatalf("expected %s.txt: %v", base, err)
	}
}

func TestSaveStripsOnlyOneTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "b.txt")
	if err := os.WriteFile(path, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := newTestModel(t, path)
	send(m, keyOf(tea.KeyCtrlEnd), keyOf(tea.KeyEnter), keyOf(tea.KeyCtrlS))
	data, _ := os.ReadFile(path)
	if string(data) != "a\n" {
		t.Fatalf("file = %q", data)
	}
}

func TestLoadNormalizesCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crlf.txt")
	if err := os.WriteFile(path, []byte("one\r\ntwo\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := newTestModel(t, path)
	w := m.current()
	if got := w.buf.Text(); got != "one\ntwo\n" {
		t.Fatalf("text = %q", got)
	}
	if w.doc.Modified {
		t.Fatalf("freshly loaded document should be clean")
	}
	if got := w.doc.Title(); got != "Text Editor - crlf.txt" {
		t.Fatalf("title = %q", got)
	}
}

func TestOpenFailureKeepsState(t *testing.T) {
	m := newTestModel(t, "")
	send(m, typed("keep"), keyOf(tea.KeyCtrlO))
	answerPrompt(t, m, filepath.Join(t.TempDir(), "missing.txt"))

	w := m.current()
	if w.dialog == nil || !strings.HasPrefix(w.dialog.message, "Could not open file:") {
		t.Fatalf("expected open error dialog, got %+v", w.dialog)
	}
	if w.buf.Text() != "keep" || w.doc.HasPath() || !w.doc.Modified {
		t.Fatalf("state changed: text=%q doc=%+v", w.buf.Text(), *w.doc)
	}
	send(m, keyOf(tea.KeyEnter))
	if w.dialog != nil {
		t.Fatalf("enter should dismiss the error")
	}
}

func TestSaveFailureKeepsState(t *testing.T) {
	m := newTestModel(t, "")
	send(m, typed("x"), keyOf(tea.KeyCtrlS))
	answerPrompt(t, m, filepath.Join(t.TempDir(), "no", "such", "dir.txt"))

	w := m.current()
	if w.dialog == nil || !strings.HasPrefix(w.dialog.message, "Could not save file:") {
		t.Fatalf("expected save error dialog")
	}
	if w.doc.HasPath() || !w.doc.Modified {
		t.Fatalf("doc changed: %+v", *w.doc)
	}
}

func TestOpenReplacesBufferAndClearsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.txt")
	if err := os.WriteFile(path, []byte("loaded"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := newTestModel(t, "")
	send(m, typed("draft"), keyOf(tea.KeyCtrlO))
	answerPrompt(t, m, path)

	w := m.current()
	if w.buf.Text() != "loaded" || w.doc.Modified || w.doc.Path != path {
		t.Fatalf("text=%q doc=%+v", w.buf.Text(), *w.doc)
	}
	send(m, keyOf(tea.KeyCtrlZ))
	if w.buf.Text() != "loaded" {
		t.Fatalf("undo after open changed text to %q", w.buf.Text())
	}
}

func TestUndoOnFreshDocumentIsNoop(t *testing.T) {
	m := newTestModel(t, "")
	send(m, keyOf(tea.KeyCtrlZ), keyOf(tea.KeyCtrlY))
	w := m.current()
	if w.buf.Text() != "" || w.doc.Modified {
		t.Fatalf("text=%q modified=%v", w.buf.Text(), w.doc.Modified)
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	m := newTestModel(t, "")
	send(m, typed("abc"), keyOf(tea.KeyCtrlZ))
	w := m.current()
	if w.buf.Text() != "" {
		t.Fatalf("after undo %q", w.buf.Text())
	}
	send(m, keyOf(tea.KeyCtrlY))
	if w.buf.Text() != "abc" {
		t.Fatalf("after redo %q", w.buf.Text())
	}
}

func TestTitleMarkerFollowsEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d.txt")
	m := newTestModel(t, "")
	send(m, typed("a"))
	if got := m.title(); got != "Text Editor - Untitled *" {
		t.Fatalf("title = %q", got)
	}
	send(m, keyOf(tea.KeyCtrlS))
	answerPrompt(t, m, path)
	if got := m.title(); got != "Text Editor - d.txt" {
		t.Fatalf("title after save = %q", got)
	}
	send(m, typed("b"))
	if got := m.title(); got != "Text Editor - d.txt *" {
		t.Fatalf("title after second edit = %q", got)
	}
}

func TestStatusReportsOneBasedCaret(t *testing.T) {
	m := newTestModel(t, "")
	w := m.current()
	if got := w.ui.Line; got != 1 || w.ui.Col != 1 {
		t.Fatalf("fresh window Ln %d, Col %d", w.ui.Line, w.ui.Col)
	}
	send(m, typed("hello"))
	if w.ui.Line != 1 || w.ui.Col != 6 {
		t.Fatalf("after typing Ln %d, Col %d", w.ui.Line, w.ui.Col)
	}
	send(m, keyOf(tea.KeyEnter))
	if w.ui.Line != 2 || w.ui.Col != 1 {
		t.Fatalf("after enter Ln %d, Col %d", w.ui.Line, w.ui.Col)
	}
	if !strings.Contains(ansi.Strip(m.View()), "Ln 2, Col 1") {
		t.Fatalf("status line missing from view")
	}
}

func TestMouseReleaseReportsCaret(t *testing.T) {
	m := newTestModel(t, "")
	send(m, typed("hello"))
	w := m.current()

	send(m, tea.MouseMsg{X: 2, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if w.ui.Col != 6 {
		t.Fatalf("press should not report yet, Col %d", w.ui.Col)
	}
	send(m, tea.MouseMsg{X: 2, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if w.ui.Line != 1 || w.ui.Col != 3 {
		t.Fatalf("after release Ln %d, Col %d", w.ui.Line, w.ui.Col)
	}
}

func TestCutCopyPaste(t *testing.T) {
	m := newTestModel(t, "")
	w := m.current()
	send(m, typed("abc"))

	// nothing selected: cut and copy do nothing
	send(m, keyOf(tea.KeyCtrlX), keyOf(tea.KeyCtrlC))
	if got, _ := m.env.clip.ReadText(); got != "" || w.buf.Text() != "abc" {
		t.Fatalf("clipboard=%q text=%q", got, w.buf.Text())
	}

	send(m, keyOf(tea.KeyShiftLeft), keyOf(tea.KeyShiftLeft), keyOf(tea.KeyCtrlX))
	if got, _ := m.env.clip.ReadText(); got != "bc" || w.buf.Text() != "a" {
		t.Fatalf("after cut clipboard=%q text=%q", got, w.buf.Text())
	}
	send(m, keyOf(tea.KeyCtrlV), keyOf(tea.KeyCtrlV))
	if w.buf.Text() != "abcbc" {
		t.Fatalf("after paste %q", w.buf.Text())
	}
	if w.ui.Col != 6 {
		t.Fatalf("paste should refresh the status, Col %d", w.ui.Col)
	}

	if err := m.env.clip.WriteText("x\r\ny"); err != nil {
		t.Fatal(err)
	}
	send(m, keyOf(tea.KeyCtrlA), keyOf(tea.KeyCtrlV))
	if w.buf.Text() != "x\ny" {
		t.Fatalf("paste over selection %q", w.buf.Text())
	}
}

func TestBracketedPasteInsertsText(t *testing.T) {
	m := newTestModel(t, "")
	send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p q"), Paste: true})
	if got := m.current().buf.Text(); got != "p q" {
		t.Fatalf("text = %q", got)
	}
}

func TestExitCleanClosesLastWindow(t *testing.T) {
	m := newTestModel(t, "")
	cmd := send(m, keyOf(tea.KeyCtrlQ))
	if !isQuit(cmd) || len(m.windows) != 0 {
		t.Fatalf("expected quit, windows=%d", len(m.windows))
	}
	if m.View() != "" {
		t.Fatalf("view after quit should be empty")
	}
}

func TestExitDirtyCancelKeepsWindow(t *testing.T) {
	m := newTestModel(t, "")
	send(m, typed("x"), keyOf(tea.KeyCtrlQ))
	w := m.current()
	if w.dialog == nil || w.dialog.message != confirmCloseMessage {
		t.Fatalf("expected confirm dialog")
	}
	if !strings.Contains(ansi.Strip(m.View()), confirmCloseMessage) {
		t.Fatalf("confirm dialog not rendered")
	}
	cmd := send(m, keyOf(tea.KeyEsc))
	if isQuit(cmd) || len(m.windows) != 1 || !w.doc.Modified || w.buf.Text() != "x" {
		t.Fatalf("cancel changed state")
	}
}

func TestExitDirtyDiscard(t *testing.T) {
	m := newTestModel(t, "")
	send(m, typed("x"), keyOf(tea.KeyCtrlQ))
	if cmd := send(m, typed("n")); !isQuit(cmd) {
		t.Fatalf("discard on last window should quit")
	}
}

func TestExitDirtySaveWithPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "e.txt")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := newTestModel(t, path)
	send(m, keyOf(tea.KeyCtrlEnd), typed("!"), keyOf(tea.KeyCtrlQ))
	if cmd := send(m, typed("y")); !isQuit(cmd) {
		t.Fatalf("save then close should quit")
	}
	data, _ := os.ReadFile(path)
	if string(data) != "old!" {
		t.Fatalf("file = %q", data)
	}
}

func TestExitYesCancelledSaveAsKeepsWindow(t *testing.T) {
	m := newTestModel(t, "")
	send(m, typed("x"), keyOf(tea.KeyCtrlQ), typed("y"))
	w := m.current()
	if w.prompt == nil || !w.closeAfterSave {
		t.Fatalf("expected save prompt with pending close")
	}
	cmd := send(m, keyOf(tea.KeyEsc))
	if isQuit(cmd) || len(m.windows) != 1 || w.closeAfterSave || !w.doc.Modified {
		t.Fatalf("cancelled save should keep the window dirty and open")
	}
}

func TestWindowsAreIndependent(t *testing.T) {
	m := newTestModel(t, "")
	send(m, typed("first"), keyOf(tea.KeyCtrlN), typed("second"))
	if len(m.windows) != 2 {
		t.Fatalf("windows = %d", len(m.windows))
	}
	if m.windows[0].buf.Text() != "first" || m.windows[1].buf.Text() != "second" {
		t.Fatalf("texts %q %q", m.windows[0].buf.Text(), m.windows[1].buf.Text())
	}

	send(m, keyOf(tea.KeyF6))
	if m.focus != 0 {
		t.Fatalf("f6 focus = %d", m.focus)
	}
	// closing a clean window keeps the program running while others remain
	send(m, keyOf(tea.KeyCtrlN))
	if cmd := send(m, keyOf(tea.KeyCtrlQ)); isQuit(cmd) {
		t.Fatalf("closing one of several windows must not quit")
	}
	if len(m.windows) != 2 {
		t.Fatalf("windows = %d", len(m.windows))
	}
}

func TestMenuRunsCommands(t *testing.T) {
	m := newTestModel(t, "")
	send(m, typed("abc"), keyOf(tea.KeyF10), keyOf(tea.KeyRight))
	w := m.current()
	if w.ui.Menu != menuEdit {
		t.Fatalf("menu = %d", w.ui.Menu)
	}
	// Edit > Undo
	send(m, keyOf(tea.KeyEnter))
	if w.buf.Text() != "" {
		t.Fatalf("undo from menu left %q", w.buf.Text())
	}
	if !strings.Contains(ansi.Strip(m.View()), "File") {
		t.Fatalf("menu bar missing")
	}
}

func TestHelpOverlayClosesOnAnyKey(t *testing.T) {
	m := newTestModel(t, "")
	send(m, keyOf(tea.KeyF1))
	if !strings.Contains(ansi.Strip(m.View()), "Keyboard shortcuts") {
		t.Fatalf("help overlay not shown")
	}
	send(m, typed("z"))
	w := m.current()
	if w.buf.Text() != "" || strings.Contains(ansi.Strip(m.View()), "Keyboard shortcuts") {
		t.Fatalf("key should only close the help")
	}
}

func TestOverlayKeepsSurroundingCells(t *testing.T) {
	got := overlay([]string{"abcdef", "ghijkl"}, []string{"XY"}, 2, 1)
	if got[0] != "abcdef" || got[1] != "ghXYkl" {
		t.Fatalf("overlay = %q", got)
	}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestMenuPasteByMouseRefreshesStatus(t *testing.T) {
	m := newTestModel(t, "")
	if err := m.env.clip.WriteText("abc\ndefgh"); err != nil {
		t.Fatal(err)
	}
	// Edit starts after " File "; its Paste item sits below Undo, Redo, a rule, Cut and Copy
	send(m, click(7, 0), click(7, 7))
	w := m.current()
	if w.buf.Text() != "abc\ndefgh" {
		t.Fatalf("text = %q", w.buf.Text())
	}
	if got := state.StatusText(w.ui); got != "Ln 2, Col 6" {
		t.Fatalf("status = %q", got)
	}
}

func TestMenuSaveByMouseConfirmsInStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.txt")
	m := newTestModel(t, "")
	send(m, typed("a"), keyOf(tea.KeyCtrlS))
	answerPrompt(t, m, path)
	send(m, typed("x"))

	w := m.current()
	send(m, click(1, 0), click(1, 4))
	if w.doc.Modified {
		t.Fatalf("document still modified after File > Save")
	}
	if got := state.StatusText(w.ui); got != "Saved: "+path {
		t.Fatalf("status = %q", got)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "ax" {
		t.Fatalf("file = %q", data)
	}
}

func TestPasteKeepsPrePasteCaretVisible(t *testing.T) {
	m := newTestModel(t, "")
	w := m.current()
	if err := m.env.clip.WriteText(strings.Repeat("line\n", 100)); err != nil {
		t.Fatal(err)
	}
	send(m, keyOf(tea.KeyCtrlV))
	if w.vp.Height >= 100 {
		t.Fatalf("view too tall for the test: %d", w.vp.Height)
	}
	if w.vp.YOffset != 0 {
		t.Fatalf("paste scrolled to %d, want the pre-paste caret row in view", w.vp.YOffset)
	}
	if w.ui.Line != 101 || w.ui.Col != 1 {
		t.Fatalf("status Ln %d, Col %d", w.ui.Line, w.ui.Col)
	}

	// the next key follows the caret again
	send(m, keyOf(tea.KeyEnd))
	if want := 100 - w.vp.Height + 1; w.vp.YOffset != want {
		t.Fatalf("YOffset = %d, want %d", w.vp.YOffset, want)
	}
}
