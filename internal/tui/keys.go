package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the editor shortcuts. The File and Edit bindings mirror the
// conventional desktop accelerators.
type keyMap struct {
	NewWindow  key.Binding
	Open       key.Binding
	Save       key.Binding
	Quit       key.Binding
	Undo       key.Binding
	Redo       key.Binding
	Cut        key.Binding
	Copy       key.Binding
	Paste      key.Binding
	SelectAll  key.Binding
	NextWindow key.Binding
	Menu       key.Binding
	FileMenu   key.Binding
	EditMenu   key.Binding
	WindowMenu key.Binding
	Help       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NewWindow:  key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new window")),
		Open:       key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open")),
		Save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "exit")),
		Undo:       key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:       key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
		Cut:        key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Copy:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Paste:      key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		SelectAll:  key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		NextWindow: key.NewBinding(key.WithKeys("f6"), key.WithHelp("f6", "next window")),
		Menu:       key.NewBinding(key.WithKeys("f10"), key.WithHelp("f10", "menu")),
		FileMenu:   key.NewBinding(key.WithKeys("alt+f"), key.WithHelp("alt+f", "file menu")),
		EditMenu:   key.NewBinding(key.WithKeys("alt+e"), key.WithHelp("alt+e", "edit menu")),
		WindowMenu: key.NewBinding(key.WithKeys("alt+w"), key.WithHelp("alt+w", "window menu")),
		Help:       key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Menu}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NewWindow, k.Open, k.Save, k.Quit},
		{k.Undo, k.Redo, k.Cut, k.Copy, k.Paste, k.SelectAll},
		{k.NextWindow, k.Menu, k.FileMenu, k.EditMenu, k.WindowMenu, k.Help},
	}
}
