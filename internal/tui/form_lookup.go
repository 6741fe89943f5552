package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// lookupModel asks for an application number and opens its file details.
type lookupModel struct {
	input textinput.Model
}

func newLookupModel() lookupModel {
	in := textinput.New()
	in.Placeholder = "2023/12345"
	in.Width = 30
	in.CharLimit = 64
	in.Focus()
	return lookupModel{input: in}
}

func (m lookupModel) value() string {
	return strings.TrimSpace(m.input.Value())
}

func (m lookupModel) update(msg tea.Msg) (lookupModel, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m lookupModel) View() string {
	return renderPage("FILE DETAILS", "Application no: ["+m.input.View()+"]", "enter: open  esc: back")
}
