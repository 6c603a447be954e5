package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type dialogKind int

const (
	dialogError dialogKind = iota
	dialogConfirm
)

type choice int

const (
	choiceYes choice = iota
	choiceNo
	choiceCancel
)

var choiceLabels = []string{"Yes", "No", "Cancel"}

// dialog is a modal message box. Error boxes have a single OK button;
// confirm boxes offer Yes/No/Cancel.
type dialog struct {
	kind    dialogKind
	title   string
	message string
	sel     choice
}

const confirmCloseMessage = "Do you want to save changes before closing?"

func errorDialog(message string) *dialog {
	return &dialog{kind: dialogError, title: "Error", message: message}
}

func confirmCloseDialog(appTitle string) *dialog {
	return &dialog{kind: dialogConfirm, title: appTitle, message: confirmCloseMessage, sel: choiceYes}
}

// update feeds one key to the dialog. done reports that it was dismissed, with
// the chosen button. Error boxes always report choiceCancel.
func (d *dialog) update(msg tea.KeyMsg) (done bool, c choice) {
	k := strings.ToLower(msg.String())
	if d.kind == dialogError {
		switch k {
		case "enter", "esc", " ", "o":
			return true, choiceCancel
		}
		return false, 0
	}
	switch k {
	case "y":
		return true, choiceYes
	case "n":
		return true, choiceNo
	case "esc", "c":
		return true, choiceCancel
	case "left", "shift+tab":
		d.sel = (d.sel + 2) % 3
	case "right", "tab":
		d.sel = (d.sel + 1) % 3
	case "enter", " ":
		return true, d.sel
	}
	return false, 0
}

// view renders the box. preview is shown between the message and the buttons.
func (d *dialog) view(env *env, preview string) string {
	st := env.styles
	var b strings.Builder
	b.WriteString(st.Title.Render(d.title) + "\n\n")
	if d.kind == dialogError {
		b.WriteString(st.ErrorText.Render(d.message) + "\n\n")
		b.WriteString(st.MenuSel.Render("[ OK ]"))
		return st.Dialog.Render(b.String())
	}
	b.WriteString(d.message + "\n")
	if preview != "" {
		b.WriteString("\n" + preview + "\n")
	}
	b.WriteString("\n")
	buttons := make([]string, len(choiceLabels))
	for i, l := range choiceLabels {
		if choice(i) == d.sel {
			buttons[i] = st.MenuSel.Render("[ " + l + " ]")
		} else {
			buttons[i] = "  " + l + "  "
		}
	}
	b.WriteString(strings.Join(buttons, " "))
	return st.Dialog.Render(b.String())
}
