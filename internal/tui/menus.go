package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"textedit/internal/tui/state"
	"textedit/internal/tui/widgets/menubar"
)

type command int

const (
	cmdNone command = iota
	cmdNewWindow
	cmdOpen
	cmdSave
	cmdSaveAs
	cmdExit
	cmdUndo
	cmdRedo
	cmdCut
	cmdCopy
	cmdPaste
	cmdSelectAll
	cmdNextWindow
	cmdFocusWindow // Window menu entry; index carried separately
)

type menuEntry struct {
	item menubar.Item
	cmd  command
	arg  int
}

const (
	menuFile = iota
	menuEdit
	menuWindow
	menuCount
)

// menus builds the menu bar. The Window menu lists the open windows.
func (m *model) menus() [][]menuEntry {
	k := m.env.keys
	file := []menuEntry{
		{menubar.Item{Label: "New Window", Shortcut: k.NewWindow.Help().Key}, cmdNewWindow, 0},
		{menubar.Item{Label: "Open...", Shortcut: k.Open.Help().Key}, cmdOpen, 0},
		{menubar.Item{Label: "Save", Shortcut: k.Save.Help().Key}, cmdSave, 0},
		{menubar.Item{Label: "Save As..."}, cmdSaveAs, 0},
		{menubar.Item{Label: "Exit", Shortcut: k.Quit.Help().Key, RuleAbove: true}, cmdExit, 0},
	}
	edit := []menuEntry{
		{menubar.Item{Label: "Undo", Shortcut: k.Undo.Help().Key}, cmdUndo, 0},
		{menubar.Item{Label: "Redo", Shortcut: k.Redo.Help().Key}, cmdRedo, 0},
		{menubar.Item{Label: "Cut", Shortcut: k.Cut.Help().Key, RuleAbove: true}, cmdCut, 0},
		{menubar.Item{Label: "Copy", Shortcut: k.Copy.Help().Key}, cmdCopy, 0},
		{menubar.Item{Label: "Paste", Shortcut: k.Paste.Help().Key}, cmdPaste, 0},
		{menubar.Item{Label: "Select All", Shortcut: k.SelectAll.Help().Key, RuleAbove: true}, cmdSelectAll, 0},
	}
	win := []menuEntry{
		{menubar.Item{Label: "Next Window", Shortcut: k.NextWindow.Help().Key}, cmdNextWindow, 0},
	}
	for i, w := range m.windows {
		label := fmt.Sprintf("%d %s", i+1, w.doc.BaseName())
		if w.doc.Modified {
			label += " *"
		}
		if i == m.focus {
			label = "> " + label
		} else {
			label = "  " + label
		}
		win = append(win, menuEntry{menubar.Item{Label: label, RuleAbove: i == 0}, cmdFocusWindow, i})
	}
	return [][]menuEntry{menuFile: file, menuEdit: edit, menuWindow: win}
}

func menuTitles() []string { return []string{"File", "Edit", "Window"} }

func (m *model) barMenus() []menubar.Menu {
	entries := m.menus()
	titles := menuTitles()
	out := make([]menubar.Menu, len(entries))
	for i, es := range entries {
		items := make([]menubar.Item, len(es))
		for j, e := range es {
			items[j] = e.item
		}
		out[i] = menubar.Menu{Title: titles[i], Items: items}
	}
	return out
}

// updateMenu handles keys while a drop-down is open.
func (m *model) updateMenu(w *window, msg tea.KeyMsg) tea.Cmd {
	entries := m.menus()
	items := len(entries[w.ui.Menu])
	switch msg.String() {
	case "esc", "f10":
		w.ui = state.CloseMenu(w.ui)
	case "left":
		w.ui = state.MoveMenu(w.ui, -1, menuCount)
	case "right":
		w.ui = state.MoveMenu(w.ui, 1, menuCount)
	case "up":
		w.ui = state.MoveMenuItem(w.ui, -1, items)
	case "down":
		w.ui = state.MoveMenuItem(w.ui, 1, items)
	case "alt+f":
		w.ui = state.OpenMenu(w.ui, menuFile, menuCount)
	case "alt+e":
		w.ui = state.OpenMenu(w.ui, menuEdit, menuCount)
	case "alt+w":
		w.ui = state.OpenMenu(w.ui, menuWindow, menuCount)
	case "enter", " ":
		e := entries[w.ui.Menu][w.ui.MenuItem]
		w.ui = state.CloseMenu(w.ui)
		return m.run(w, e.cmd, e.arg)
	}
	return nil
}

// clickMenu handles a left click on the menu bar row or, while a drop-down
// is open, anywhere else. consumed reports that the click belonged to the
// menus; ran that it activated an item.
func (m *model) clickMenu(w *window, x, y int) (cmd tea.Cmd, consumed, ran bool) {
	bar := m.barMenus()
	if y == 0 {
		for i := range bar {
			if x < menubar.Offset(bar, i) || x >= menubar.Offset(bar, i+1) {
				continue
			}
			if w.ui.Focus == state.MENU && w.ui.Menu == i {
				w.ui = state.CloseMenu(w.ui)
			} else {
				w.ui = state.OpenMenu(w.ui, i, menuCount)
			}
			return nil, true, false
		}
		if w.ui.Focus == state.MENU {
			w.ui = state.CloseMenu(w.ui)
		}
		return nil, true, false
	}
	if w.ui.Focus != state.MENU {
		return nil, false, false
	}
	left := menubar.Offset(bar, w.ui.Menu)
	width := ansi.StringWidth(m.env.menubar.Dropdown(bar[w.ui.Menu], w.ui)[0])
	if x >= left && x < left+width {
		// border on row 1, items from row 2 with rules taking a row each
		row := 2
		for i, it := range bar[w.ui.Menu].Items {
			if it.RuleAbove && i > 0 {
				row++
			}
			if y == row {
				e := m.menus()[w.ui.Menu][i]
				w.ui = state.CloseMenu(w.ui)
				return m.run(w, e.cmd, e.arg), true, true
			}
			row++
		}
	}
	w.ui = state.CloseMenu(w.ui)
	return nil, true, false
}
