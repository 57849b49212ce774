package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formKind tells the model what to do with a submitted form.
type formKind int

const (
	formNewGame formKind = iota
	formJoin
	formRename
	formAddFactory
	formEditFactory
	formSolver
)

type formField struct {
	label string
	input textinput.Model
}

// formModel is a small multi-field text form. tab and shift+tab move the
// focus, enter submits, esc cancels.
type formModel struct {
	kind   formKind
	title  string
	fields []formField
	focus  int

	// target is the id of the edited entity, if any.
	target string
}

func newFormModel(kind formKind, title string, labels ...string) *formModel {
	f := &formModel{kind: kind, title: title}
	for _, label := range labels {
		in := textinput.New()
		in.Width = 40
		f.fields = append(f.fields, formField{label: label, input: in})
	}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

func (f *formModel) withValues(values ...string) *formModel {
	for i, v := range values {
		if i < len(f.fields) {
			f.fields[i].input.SetValue(v)
		}
	}
	return f
}

func (f *formModel) value(i int) string {
	if i >= len(f.fields) {
		return ""
	}
	return strings.TrimSpace(f.fields[i].input.Value())
}

func (f *formModel) moveFocus(delta int) {
	if len(f.fields) == 0 {
		return
	}
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

// update forwards msg to the focused input.
func (f *formModel) update(msg tea.Msg) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *formModel) View() string {
	width := 0
	for _, field := range f.fields {
		width = max(width, len(field.label))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title))
	b.WriteString("\n\n")
	for _, field := range f.fields {
		b.WriteString(field.label)
		b.WriteString(":")
		b.WriteString(strings.Repeat(" ", width-len(field.label)+1))
		b.WriteString("[")
		b.WriteString(field.input.View())
		b.WriteString("]\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc cancel  tab next field  enter save"))
	return b.String()
}
