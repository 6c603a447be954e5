package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"textedit/internal/clip"
	"textedit/internal/config"
	"textedit/internal/tui/state"
	"textedit/internal/tui/util"
	"textedit/internal/tui/widgets/diff"
	"textedit/internal/tui/widgets/editor"
	"textedit/internal/tui/widgets/helpoverlay"
	"textedit/internal/tui/widgets/menubar"
	"textedit/internal/tui/widgets/statusbar"
)

// Run opens one window (loading path when given) and runs until the last window closes.
func Run(path string, cfg config.Config) error {
	m := newModel(cfg, clip.New(cfg.Clipboard))
	m.addWindow(path)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// env holds what every window shares: configuration, clipboard and renderers.
type env struct {
	cfg     config.Config
	clip    clip.Clipboard
	keys    keyMap
	noColor bool
	styles  util.Styles
	editor  editor.Editor
	status  statusbar.StatusBar
	menubar menubar.MenuBar
	help    helpoverlay.HelpOverlay
	diff    diff.DiffView
}

// Default terminal size until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

const previewLines = 6

type model struct {
	env     *env
	windows []*window
	focus   int
	nextID  int

	width  int
	height int

	lastTitle string
}

func newModel(cfg config.Config, cb clip.Clipboard) *model {
	noColor := util.NoColor(cfg.NoColor)
	styles := util.NewStyles(util.DefaultPalette(), noColor)
	return &model{
		env: &env{
			cfg:     cfg,
			clip:    cb,
			keys:    defaultKeyMap(),
			noColor: noColor,
			styles:  styles,
			editor:  editor.NewEditor(cfg.TabWidth, styles),
			status:  statusbar.NewStatusBar(styles),
			menubar: menubar.NewMenuBar(styles),
			help:    helpoverlay.NewHelpOverlay(styles),
			diff:    diff.NewDiffView(styles),
		},
		width:  defaultWidth,
		height: defaultHeight,
	}
}

// addWindow appends a window, loading path when it is not empty. A load
// error is shown in the new window, which then stays empty and untitled.
func (m *model) addWindow(path string) *window {
	w := m.newWindow()
	if path != "" {
		m.load(w, path)
	}
	m.windows = append(m.windows, w)
	m.refresh(w, true)
	return w
}

func (m *model) indexOf(w *window) int {
	for i, x := range m.windows {
		if x == w {
			return i
		}
	}
	return -1
}

// focusWindow focuses window i, wrapping around.
func (m *model) focusWindow(i int) {
	n := len(m.windows)
	if n == 0 {
		return
	}
	m.focus = ((i % n) + n) % n
}

func (m *model) current() *window {
	if len(m.windows) == 0 {
		return nil
	}
	return m.windows[m.focus]
}

// closeWindow removes w. Closing the last window quits the program.
func (m *model) closeWindow(w *window) tea.Cmd {
	i := m.indexOf(w)
	if i < 0 {
		return nil
	}
	m.windows = append(m.windows[:i], m.windows[i+1:]...)
	if len(m.windows) == 0 {
		m.focus = 0
		return tea.Quit
	}
	if i < m.focus || m.focus >= len(m.windows) {
		m.focus--
	}
	m.focusWindow(m.focus)
	return nil
}

func (m *model) title() string {
	w := m.current()
	if w == nil {
		return ""
	}
	return w.doc.Title()
}

func (m *model) Init() tea.Cmd {
	m.lastTitle = m.title()
	return tea.SetWindowTitle(m.lastTitle)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	report := false
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = max(msg.Width, 1), max(msg.Height, 1)
		for _, w := range m.windows {
			m.resize(w)
			m.refresh(w, false)
		}
		return m, nil
	case tea.KeyMsg:
		w := m.current()
		if w == nil {
			return m, nil
		}
		cmd = m.updateKey(w, msg)
		report = true
	case tea.MouseMsg:
		w := m.current()
		if w == nil {
			return m, nil
		}
		cmd, report = m.updateMouse(w, msg)
	default:
		if w := m.current(); w != nil && w.prompt != nil {
			// cursor blink and other textinput ticks
			w.prompt.input, cmd = w.prompt.input.Update(msg)
		}
		return m, cmd
	}

	w := m.current()
	if w == nil {
		return m, cmd
	}
	m.refresh(w, report)
	if t := m.title(); t != m.lastTitle {
		m.lastTitle = t
		cmd = tea.Batch(cmd, tea.SetWindowTitle(t))
	}
	return m, cmd
}

func (m *model) View() string {
	w := m.current()
	if w == nil {
		return ""
	}
	bar := m.barMenus()
	lines := make([]string, 0, m.height)
	lines = append(lines, m.env.menubar.Bar(bar, w.ui, w.doc.Title()))
	lines = append(lines, strings.Split(w.vp.View(), "\n")...)
	for len(lines) < m.height-1 {
		lines = append(lines, "")
	}
	lines = lines[:max(m.height-1, 1)]
	lines = append(lines, m.env.status.View(w.ui, m.env.help.Hint(m.env.keys)))

	switch {
	case w.dialog != nil:
		preview := ""
		if w.dialog.kind == dialogConfirm {
			preview = m.env.diff.View(w.saved, w.buf.Text(), previewLines, min(m.width-6, 60))
		}
		lines = m.center(lines, w.dialog.view(m.env, preview))
	case w.prompt != nil:
		lines = m.center(lines, w.prompt.view(m.env))
	case w.ui.Focus == state.HELP:
		lines = m.center(lines, m.env.help.View(m.env.keys, w.ui))
	case w.ui.Focus == state.MENU:
		lines = overlay(lines, m.env.menubar.Dropdown(bar[w.ui.Menu], w.ui), menubar.Offset(bar, w.ui.Menu), 1)
	}
	return strings.Join(lines, "\n")
}

func (m *model) center(lines []string, box string) []string {
	bl := strings.Split(box, "\n")
	x := max((m.width-lipgloss.Width(box))/2, 0)
	y := max((m.height-len(bl))/2, 0)
	return overlay(lines, bl, x, y)
}

// overlay draws box over lines with its top-left corner at cell (x, y).
func overlay(lines, box []string, x, y int) []string {
	out := append([]string(nil), lines...)
	for i, b := range box {
		row := y + i
		if row < 0 || row >= len(out) {
			continue
		}
		under := out[row]
		left := ansi.Truncate(under, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(under, x+ansi.StringWidth(b), "")
		out[row] = left + b + right
	}
	return out
}
