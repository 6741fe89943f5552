package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultDetailWidth  = 100
	defaultDetailHeight = 20
	detailChromeHeight  = 10
)

type detailModel struct {
	applicationNo string
	viewport      viewport.Model
	status        string
}

func newDetailModel(applicationNo, details string, width, height int) detailModel {
	vp := viewport.New(detailSize(width, height))
	vp.SetContent(details)
	return detailModel{applicationNo: applicationNo, viewport: vp}
}

func detailSize(width, height int) (int, int) {
	if width <= 0 {
		width = defaultDetailWidth
	}
	if height <= detailChromeHeight {
		height = defaultDetailHeight + detailChromeHeight
	}
	return width - 4, height - detailChromeHeight
}

func (m detailModel) resize(width, height int) detailModel {
	m.viewport.Width, m.viewport.Height = detailSize(width, height)
	return m
}

func (m detailModel) update(msg tea.Msg) (detailModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m detailModel) View() string {
	body := m.viewport.View()
	if m.status != "" {
		body += "\n\n" + m.status
	}
	return renderPage("APPLICATION "+m.applicationNo, body, "↑/↓: scroll  c: copy no  esc: back  q: quit")
}
