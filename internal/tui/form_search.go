package tui

import (
	"strings"

	"github.com/MKhiriev/trademark-relay/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var searchFormLabels = []string{
	"Mark name:   ",
	"Holder:      ",
	"Client no:   ",
	"Nice classes:",
}

type searchFormModel struct {
	inputs []textinput.Model
	focus  int
	hint   string
}

func newSearchFormModel() searchFormModel {
	inputs := make([]textinput.Model, len(searchFormLabels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 200
	}
	inputs[0].Placeholder = "ACME"
	inputs[3].Placeholder = "9 35"
	inputs[0].Focus()

	return searchFormModel{inputs: inputs}
}

func (m searchFormModel) isEmpty() bool {
	for _, in := range m.inputs {
		if strings.TrimSpace(in.Value()) != "" {
			return false
		}
	}
	return true
}

func (m searchFormModel) query(limit int) models.SearchQuery {
	return models.SearchQuery{
		SearchText:  m.inputs[0].Value(),
		HolderName:  m.inputs[1].Value(),
		ClientNo:    m.inputs[2].Value(),
		NiceClasses: m.inputs[3].Value(),
		Limit:       limit,
	}
}

func (m searchFormModel) moveFocus(delta int) (searchFormModel, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m, m.inputs[m.focus].Focus()
}

func (m searchFormModel) update(msg tea.Msg) (searchFormModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.hint = ""
	return m, cmd
}

func (m searchFormModel) View() string {
	var b strings.Builder
	for i, in := range m.inputs {
		label := searchFormLabels[i]
		if i == m.focus {
			label = selectedStyle.Render(label)
		}
		b.WriteString(label + " [" + in.View() + "]\n")
	}
	if m.hint != "" {
		b.WriteString("\n" + m.hint + "\n")
	}

	return renderPage("TRADEMARK SEARCH", b.String(), "tab: next field  enter: search  esc: back to results")
}
