package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type promptMode int

const (
	promptOpen promptMode = iota
	promptSave
)

// fileFilter mirrors the desktop file dialog filter list.
type fileFilter struct {
	name string
	ext  string // empty matches everything
}

var fileFilters = []fileFilter{
	{name: "Text Files (*.txt)", ext: ".txt"},
	{name: "All Files (*)"},
}

const maxSuggestions = 8

// filePrompt is the open/save dialog: a path input with directory suggestions.
type filePrompt struct {
	mode    promptMode
	title   string
	input   textinput.Model
	filter  int
	suggest []string
	sel     int // highlighted suggestion, -1 for none
}

type promptResult int

const (
	promptPending promptResult = iota
	promptAccepted
	promptCancelled
)

// newFilePrompt seeds the input with the directory of current, or the working directory.
func newFilePrompt(mode promptMode, current string) *filePrompt {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 4096
	ti.Width = 60
	seed := current
	if seed == "" {
		if wd, err := os.Getwd(); err == nil {
			seed = wd + string(filepath.Separator)
		}
	} else if mode == promptOpen {
		seed = filepath.Dir(seed) + string(filepath.Separator)
	}
	ti.SetValue(seed)
	ti.CursorEnd()
	ti.Focus()

	title := "Open File"
	if mode == promptSave {
		title = "Save As"
	}
	p := &filePrompt{mode: mode, title: title, input: ti, sel: -1}
	p.computeSuggestions()
	return p
}

// update feeds one key to the prompt. On promptAccepted the chosen path is returned.
func (p *filePrompt) update(msg tea.KeyMsg) (promptResult, string, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return promptCancelled, "", nil
	case "enter":
		if p.sel >= 0 && p.sel < len(p.suggest) {
			choice := expandPath(p.suggest[p.sel])
			if fi, err := os.Stat(choice); err == nil && fi.IsDir() {
				p.setValue(choice + string(filepath.Separator))
				return promptPending, "", nil
			}
			return promptAccepted, choice, nil
		}
		v := strings.TrimSpace(p.input.Value())
		if v == "" {
			return promptPending, "", nil
		}
		path := expandPath(v)
		if fi, err := os.Stat(path); err == nil && fi.IsDir() {
			p.setValue(path + string(filepath.Separator))
			return promptPending, "", nil
		}
		return promptAccepted, path, nil
	case "tab":
		if len(p.suggest) > 0 {
			i := max(p.sel, 0)
			p.setValue(p.suggest[i])
		}
		return promptPending, "", nil
	case "ctrl+t":
		p.filter = (p.filter + 1) % len(fileFilters)
		p.computeSuggestions()
		return promptPending, "", nil
	case "up":
		if len(p.suggest) > 0 {
			p.sel--
			if p.sel < -1 {
				p.sel = len(p.suggest) - 1
			}
		}
		return promptPending, "", nil
	case "down":
		if len(p.suggest) > 0 {
			p.sel++
			if p.sel >= len(p.suggest) {
				p.sel = -1
			}
		}
		return promptPending, "", nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.sel = -1
	p.computeSuggestions()
	return promptPending, "", cmd
}

func (p *filePrompt) setValue(v string) {
	p.input.SetValue(v)
	p.input.CursorEnd()
	p.sel = -1
	p.computeSuggestions()
}

// computeSuggestions lists entries of the input's directory whose names
// contain the typed base name. Directories always match the filter.
func (p *filePrompt) computeSuggestions() {
	in := p.input.Value()
	if strings.TrimSpace(in) == "" {
		p.suggest = nil
		return
	}
	expanded := expandPath(in)
	dir, base := expanded, ""
	if fi, err := os.Stat(expanded); err != nil || !fi.IsDir() || !strings.HasSuffix(in, string(filepath.Separator)) {
		dir = filepath.Dir(expanded)
		base = filepath.Base(expanded)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		p.suggest = nil
		return
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	ext := fileFilters[p.filter].ext
	var out []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		if base != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(base)) {
			continue
		}
		if !e.IsDir() && ext != "" && !strings.EqualFold(filepath.Ext(name), ext) {
			continue
		}
		cand := filepath.Join(dir, name)
		if e.IsDir() {
			cand += string(filepath.Separator)
		}
		if h, _ := os.UserHomeDir(); h != "" && strings.HasPrefix(cand, h) {
			cand = "~" + strings.TrimPrefix(cand, h)
		}
		out = append(out, cand)
		if len(out) >= maxSuggestions {
			break
		}
	}
	p.suggest = out
}

func expandPath(p string) string {
	p = strings.TrimSpace(p)
	if strings.HasPrefix(p, "~/") {
		if h, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(h, p[2:])
		}
	}
	p = os.ExpandEnv(p)
	if !filepath.IsAbs(p) {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
	}
	return p
}

func (p *filePrompt) view(env *env) string {
	var b strings.Builder
	b.WriteString(env.styles.Title.Render(p.title) + "\n\n")
	b.WriteString(p.input.View() + "\n")
	b.WriteString(env.styles.Faint.Render("Filter: "+fileFilters[p.filter].name) + "\n")
	for i, s := range p.suggest {
		line := "  " + s
		if i == p.sel {
			line = env.styles.MenuSel.Render("> " + s)
		}
		b.WriteString(line + "\n")
	}
	hint := "enter: open   tab: complete   ↑/↓: pick   ctrl+t: filter   esc: cancel"
	if p.mode == promptSave {
		hint = "enter: save   tab: complete   ↑/↓: pick   ctrl+t: filter   esc: cancel"
	}
	b.WriteString("\n" + env.styles.Faint.Render(hint))
	return env.styles.Dialog.Render(b.String())
}
