package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/jask/gitdeck/internal/service"
)

const (
	fieldName = iota
	fieldAffiliation
	fieldLink
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Affiliation", "Profile link (optional)"}

var fieldIndex = map[string]int{
	"name":        fieldName,
	"affiliation": fieldAffiliation,
}

type profileForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
}

func newProfileForm() profileForm {
	var f profileForm
	placeholders := [fieldCount]string{"Ada Lovelace", "Analytical Engines Ltd", "https://github.com/ada"}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 120
		in.Prompt = ""
		f.inputs[i] = in
	}
	return f
}

func (f *profileForm) fill(p *service.Profile) {
	if p == nil {
		return
	}
	f.inputs[fieldName].SetValue(p.Name)
	f.inputs[fieldAffiliation].SetValue(p.Affiliation)
	f.inputs[fieldLink].SetValue(p.ProfileURL)
}

func (f *profileForm) values() (name, affiliation, link string) {
	return f.inputs[fieldName].Value(), f.inputs[fieldAffiliation].Value(), f.inputs[fieldLink].Value()
}

// focusField moves focus to field i and blurs the rest.
func (f *profileForm) focusField(i int) {
	f.focus = (i + fieldCount) % fieldCount
	for j := range f.inputs {
		if j == f.focus {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

func (f *profileForm) blur() {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
}

// focusMissing moves focus to the field named by a save error.
func (f *profileForm) focusMissing(field string) {
	if i, ok := fieldIndex[field]; ok {
		f.focusField(i)
	}
}

func (f *profileForm) setWidth(width int) {
	for i := range f.inputs {
		f.inputs[i].Width = width - 6
	}
}

func (f *profileForm) view(width int) string {
	var b strings.Builder
	for i, in := range f.inputs {
		label := labelStyle.Render(fieldLabels[i])
		if i == f.focus && in.Focused() {
			label = focusStyle.Render(fieldLabels[i])
		}
		b.WriteString(label + "\n" + in.View() + "\n\n")
	}
	b.WriteString(dimStyle.Render("[tab] Next field  [enter] Save"))
	return widgetBoxStyle.Width(width).Render(b.String())
}
