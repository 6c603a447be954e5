package tui

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"textedit/internal/document"
	"textedit/internal/textbuf"
	"textedit/internal/tui/state"
	"textedit/internal/tui/widgets/editor"
)

// window is one open document with its own buffer, scroll position and modal layers.
type window struct {
	id    int
	doc   *document.Document
	buf   *textbuf.Buffer
	saved string // text as last loaded or saved
	ui    state.UIState
	vp    viewport.Model
	rows  []editor.Row

	prompt *filePrompt
	dialog *dialog

	closeAfterSave bool
	dragging       bool
	keep           *textbuf.Pos // row to keep visible on the next refresh instead of the caret
	notice         string       // saved path to announce on the next caret report
}

const wheelStep = 3

func (m *model) newWindow() *window {
	m.nextID++
	w := &window{
		id:  m.nextID,
		doc: document.New(""),
		buf: textbuf.New("", textbuf.Options{HistoryLimit: m.env.cfg.HistoryLimit}),
		ui:  state.New(),
		vp:  viewport.New(m.width, surfaceHeight(m.height)),
	}
	w.ui.NoColor = m.env.noColor
	w.ui = state.Resize(w.ui, m.width, m.height)
	return w
}

func surfaceHeight(h int) int { return max(h-2, 1) }

func (m *model) resize(w *window) {
	w.ui = state.Resize(w.ui, m.width, m.height)
	w.vp.Width = m.width
	w.vp.Height = surfaceHeight(m.height)
}

// load replaces the buffer with the file at path. On failure the window is left as it was.
func (m *model) load(w *window, path string) bool {
	text, err := document.Load(path)
	if err != nil {
		log.Printf("open: %s: %v", path, err)
		m.showError(w, "Could not open file:\n"+err.Error())
		return false
	}
	w.buf.Reset(text)
	w.doc.Path = path
	w.doc.MarkClean()
	w.saved = text
	w.vp.SetYOffset(0)
	return true
}

// saveTo writes the buffer to path. The path becomes the document path only on success.
func (m *model) saveTo(w *window, path string) bool {
	if err := document.Save(path, w.buf.Contents()); err != nil {
		log.Printf("save: %s: %v", path, err)
		m.showError(w, "Could not save file:\n"+err.Error())
		return false
	}
	w.doc.Path = path
	w.doc.MarkClean()
	w.buf.ResetModified()
	w.saved = w.buf.Text()
	w.notice = path
	return true
}

func (m *model) showError(w *window, msg string) {
	w.dialog = errorDialog(msg)
	w.ui.Focus = state.DIALOG
}

func (m *model) openPrompt(w *window, mode promptMode) tea.Cmd {
	w.prompt = newFilePrompt(mode, w.doc.Path)
	w.ui.Focus = state.PROMPT
	return textinput.Blink
}

// save writes to the document path, or asks for one first.
func (m *model) save(w *window) tea.Cmd {
	if !w.doc.HasPath() {
		return m.openPrompt(w, promptSave)
	}
	if m.saveTo(w, w.doc.Path) && w.closeAfterSave {
		return m.closeWindow(w)
	}
	w.closeAfterSave = false
	return nil
}

// requestClose closes w, asking first when it has unsaved changes.
func (m *model) requestClose(w *window) tea.Cmd {
	if !w.doc.Modified {
		return m.closeWindow(w)
	}
	w.dialog = confirmCloseDialog(document.AppTitle)
	w.ui.Focus = state.DIALOG
	return nil
}

func (m *model) paste(w *window, text string) {
	if text == "" {
		return
	}
	pre := w.buf.Caret()
	w.buf.InsertText(text)
	w.keep = &pre
}

// run executes a menu or shortcut command against w.
func (m *model) run(w *window, c command, arg int) tea.Cmd {
	switch c {
	case cmdNewWindow:
		nw := m.addWindow(w.doc.Path)
		m.focusWindow(m.indexOf(nw))
	case cmdOpen:
		return m.openPrompt(w, promptOpen)
	case cmdSave:
		return m.save(w)
	case cmdSaveAs:
		return m.openPrompt(w, promptSave)
	case cmdExit:
		return m.requestClose(w)
	case cmdUndo:
		w.buf.Undo()
	case cmdRedo:
		w.buf.Redo()
	case cmdCut:
		if text := w.buf.SelectedText(); text != "" {
			if err := m.env.clip.WriteText(text); err != nil {
				log.Printf("cut: %v", err)
				return nil
			}
			w.buf.Cut()
		}
	case cmdCopy:
		if text := w.buf.SelectedText(); text != "" {
			if err := m.env.clip.WriteText(text); err != nil {
				log.Printf("copy: %v", err)
			}
		}
	case cmdPaste:
		text, err := m.env.clip.ReadText()
		if err != nil {
			log.Printf("paste: %v", err)
			return nil
		}
		m.paste(w, text)
	case cmdSelectAll:
		w.buf.SelectAll()
	case cmdNextWindow:
		m.focusWindow(m.focus + 1)
	case cmdFocusWindow:
		m.focusWindow(arg)
	}
	return nil
}

// updateKey routes a key to the top-most layer of w.
func (m *model) updateKey(w *window, msg tea.KeyMsg) tea.Cmd {
	switch {
	case w.dialog != nil:
		return m.updateDialog(w, msg)
	case w.prompt != nil:
		return m.updatePrompt(w, msg)
	case w.ui.Focus == state.HELP:
		w.ui = state.ToggleHelp(w.ui)
		return nil
	case w.ui.Focus == state.MENU:
		return m.updateMenu(w, msg)
	}
	return m.updateEditing(w, msg)
}

func (m *model) updateDialog(w *window, msg tea.KeyMsg) tea.Cmd {
	d := w.dialog
	done, c := d.update(msg)
	if !done {
		return nil
	}
	w.dialog = nil
	w.ui.Focus = state.EDITING
	if d.kind == dialogError {
		w.closeAfterSave = false
		return nil
	}
	switch c {
	case choiceYes:
		w.closeAfterSave = true
		return m.save(w)
	case choiceNo:
		return m.closeWindow(w)
	}
	return nil
}

func (m *model) updatePrompt(w *window, msg tea.KeyMsg) tea.Cmd {
	p := w.prompt
	res, path, cmd := p.update(msg)
	switch res {
	case promptCancelled:
		w.prompt = nil
		w.ui.Focus = state.EDITING
		w.closeAfterSave = false
		return nil
	case promptAccepted:
		w.prompt = nil
		w.ui.Focus = state.EDITING
		if p.mode == promptOpen {
			m.load(w, path)
			return nil
		}
		if m.saveTo(w, document.WithDefaultExt(path, m.env.cfg.DefaultExt)) && w.closeAfterSave {
			return m.closeWindow(w)
		}
		w.closeAfterSave = false
		return nil
	}
	return cmd
}

func (m *model) updateEditing(w *window, msg tea.KeyMsg) tea.Cmd {
	k := m.env.keys
	switch {
	case key.Matches(msg, k.NewWindow):
		return m.run(w, cmdNewWindow, 0)
	case key.Matches(msg, k.Open):
		return m.run(w, cmdOpen, 0)
	case key.Matches(msg, k.Save):
		return m.run(w, cmdSave, 0)
	case key.Matches(msg, k.Quit):
		return m.run(w, cmdExit, 0)
	case key.Matches(msg, k.Undo):
		return m.run(w, cmdUndo, 0)
	case key.Matches(msg, k.Redo):
		return m.run(w, cmdRedo, 0)
	case key.Matches(msg, k.Cut):
		return m.run(w, cmdCut, 0)
	case key.Matches(msg, k.Copy):
		return m.run(w, cmdCopy, 0)
	case key.Matches(msg, k.Paste):
		return m.run(w, cmdPaste, 0)
	case key.Matches(msg, k.SelectAll):
		return m.run(w, cmdSelectAll, 0)
	case key.Matches(msg, k.NextWindow):
		return m.run(w, cmdNextWindow, 0)
	case key.Matches(msg, k.Menu), key.Matches(msg, k.FileMenu):
		w.ui = state.OpenMenu(w.ui, menuFile, menuCount)
		return nil
	case key.Matches(msg, k.EditMenu):
		w.ui = state.OpenMenu(w.ui, menuEdit, menuCount)
		return nil
	case key.Matches(msg, k.WindowMenu):
		w.ui = state.OpenMenu(w.ui, menuWindow, menuCount)
		return nil
	case key.Matches(msg, k.Help):
		w.ui = state.ToggleHelp(w.ui)
		return nil
	}

	if msg.Paste {
		m.paste(w, string(msg.Runes))
		return nil
	}

	b := w.buf
	page := max(w.vp.Height-1, 1)
	switch msg.String() {
	case "left":
		b.MoveLeft(false)
	case "shift+left":
		b.MoveLeft(true)
	case "right":
		b.MoveRight(false)
	case "shift+right":
		b.MoveRight(true)
	case "up":
		b.MoveUp(false)
	case "shift+up":
		b.MoveUp(true)
	case "down":
		b.MoveDown(false)
	case "shift+down":
		b.MoveDown(true)
	case "home":
		b.LineStart(false)
	case "shift+home":
		b.LineStart(true)
	case "end":
		b.LineEnd(false)
	case "shift+end":
		b.LineEnd(true)
	case "ctrl+home":
		b.DocStart(false)
	case "ctrl+shift+home":
		b.DocStart(true)
	case "ctrl+end":
		b.DocEnd(false)
	case "ctrl+shift+end":
		b.DocEnd(true)
	case "pgup":
		b.PageUp(page, false)
	case "pgdown":
		b.PageDown(page, false)
	case "backspace":
		b.Backspace()
	case "delete":
		b.DeleteForward()
	case "enter":
		b.Newline()
	case "tab":
		b.InsertRune('\t')
	case "esc":
		b.ClearSelection()
	default:
		switch msg.Type {
		case tea.KeySpace:
			b.InsertRune(' ')
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				b.InsertRune(r)
			}
		}
	}
	return nil
}

// updateMouse handles clicks, drags and the wheel. It reports whether the
// caret report should be refreshed: a left-button release on the text
// surface, or a menu item run by click.
func (m *model) updateMouse(w *window, msg tea.MouseMsg) (tea.Cmd, bool) {
	if w.dialog != nil || w.prompt != nil {
		return nil, false
	}
	if w.ui.Focus == state.HELP {
		if msg.Action == tea.MouseActionPress {
			w.ui = state.ToggleHelp(w.ui)
		}
		return nil, false
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		w.vp.SetYOffset(w.vp.YOffset - wheelStep)
		return nil, false
	case tea.MouseButtonWheelDown:
		w.vp.SetYOffset(w.vp.YOffset + wheelStep)
		return nil, false
	}

	y := msg.Y - 1
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil, false
		}
		if cmd, ok, ran := m.clickMenu(w, msg.X, msg.Y); ok {
			return cmd, ran
		}
		if y < 0 || y >= w.vp.Height {
			return nil, false
		}
		p := m.env.editor.HitTest(w.buf, w.rows, w.vp.YOffset, msg.X, y)
		w.buf.SetCaret(p, msg.Shift)
		w.dragging = true
	case tea.MouseActionMotion:
		if !w.dragging {
			return nil, false
		}
		p := m.env.editor.HitTest(w.buf, w.rows, w.vp.YOffset, msg.X, min(max(y, 0), w.vp.Height-1))
		w.buf.SetCaret(p, true)
	case tea.MouseActionRelease:
		if !w.dragging {
			return nil, false
		}
		w.dragging = false
		return nil, true
	}
	return nil, false
}

// refresh lifts the buffer's modified latch into the document, re-lays out
// the text, scrolls the caret into view and, with report, updates Ln/Col.
func (m *model) refresh(w *window, report bool) {
	if w.buf.EditModified() {
		w.doc.MarkModified()
		w.buf.ResetModified()
	}
	e := m.env.editor
	w.rows = e.Layout(w.buf, w.vp.Width)
	showCaret := w.ui.Focus == state.EDITING
	w.vp.SetContent(e.View(w.buf, w.rows, 0, max(len(w.rows), w.vp.Height), showCaret))

	target := w.buf.Caret()
	if w.keep != nil {
		target = *w.keep
		w.keep = nil
	}
	m.scrollTo(w, editor.RowOf(w.rows, target))

	if report {
		c := w.buf.Caret()
		w.ui = state.ReportCaret(w.ui, c.Line, c.Col)
		if w.notice != "" {
			w.ui = state.ReportSaved(w.ui, w.notice)
			w.notice = ""
		}
	}
}

func (m *model) scrollTo(w *window, row int) {
	switch {
	case row < w.vp.YOffset:
		w.vp.SetYOffset(row)
	case row >= w.vp.YOffset+w.vp.Height:
		w.vp.SetYOffset(row - w.vp.Height + 1)
	}
}
