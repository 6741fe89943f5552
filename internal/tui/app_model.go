package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/trademark-relay/internal/service"
	"github.com/MKhiriev/trademark-relay/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenSearch screen = iota
	screenLookup
	screenResults
	screenDetail
)

const (
	defaultPageSize = 20
	statusTTL       = 2 * time.Second
)

// copyToClipboard is replaced in tests; there is no clipboard on CI.
var copyToClipboard = clipboard.WriteAll

type appModel struct {
	ctx       context.Context
	relay     service.ClientRelayService
	buildInfo models.AppBuildInfo
	pageSize  int

	screen     screen
	prevScreen screen
	form       searchFormModel
	lookup     lookupModel
	results    resultsModel
	hasResults bool
	detail     detailModel

	loading       bool
	spinner       spinner.Model
	errOverlay    *errorOverlayModel
	showBuildInfo bool
	serverVersion string

	width  int
	height int
}

func newAppModel(ctx context.Context, relay service.ClientRelayService, buildInfo models.AppBuildInfo) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:       ctx,
		relay:     relay,
		buildInfo: buildInfo,
		pageSize:  defaultPageSize,
		screen:    screenSearch,
		form:      newSearchFormModel(),
		lookup:    newLookupModel(),
		spinner:   s,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdVersion())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.detail = m.detail.resize(msg.Width, msg.Height)
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case searchDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.results = newResultsModel(msg.query, msg.result)
		m.hasResults = true
		m.screen = screenResults
		return m, nil
	case detailsDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.prevScreen = m.screen
		m.detail = newDetailModel(msg.applicationNo, msg.details, m.width, m.height)
		m.screen = screenDetail
		return m, nil
	case versionDoneMsg:
		if msg.err == nil {
			m.serverVersion = msg.version
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.showError(fmt.Errorf("copy to clipboard: %w", msg.err))
			return m, nil
		}
		m.setStatus("Copied " + msg.applicationNo)
		return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
	case clearStatusMsg:
		m.setStatus("")
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forward(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.errOverlay != nil {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.errOverlay = nil
		}
		return m, nil
	}
	if m.showBuildInfo {
		if key.Matches(keyMsg, keys.esc, keys.version) {
			m.showBuildInfo = false
		}
		return m, nil
	}
	if m.loading {
		return m, nil
	}

	switch m.screen {
	case screenSearch:
		return m.updateSearch(keyMsg)
	case screenLookup:
		return m.updateLookup(keyMsg)
	case screenResults:
		return m.updateResults(keyMsg)
	case screenDetail:
		return m.updateDetail(keyMsg)
	}
	return m, nil
}

func (m appModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		if m.hasResults {
			m.screen = screenResults
		}
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.form.isEmpty() {
			m.form.hint = "Fill in at least one field."
			return m, nil
		}
		return m.startLoading(m.cmdSearch(m.form.query(m.pageSize)))
	case key.Matches(msg, keys.tab):
		var cmd tea.Cmd
		m.form, cmd = m.form.moveFocus(1)
		return m, cmd
	case key.Matches(msg, keys.backtab):
		var cmd tea.Cmd
		m.form, cmd = m.form.moveFocus(-1)
		return m, cmd
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m appModel) updateLookup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = m.backScreen()
		return m, nil
	case key.Matches(msg, keys.enter):
		applicationNo := m.lookup.value()
		if applicationNo == "" {
			return m, nil
		}
		return m.startLoading(m.cmdDetails(applicationNo))
	}

	var cmd tea.Cmd
	m.lookup, cmd = m.lookup.update(msg)
	return m, cmd
}

func (m appModel) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.results = m.results.move(-1)
	case key.Matches(msg, keys.down):
		m.results = m.results.move(1)
	case key.Matches(msg, keys.search):
		m.screen = screenSearch
		return m, textinput.Blink
	case key.Matches(msg, keys.lookup):
		m.lookup = newLookupModel()
		m.screen = screenLookup
		return m, textinput.Blink
	case key.Matches(msg, keys.version):
		m.showBuildInfo = true
		return m, m.cmdVersion()
	case key.Matches(msg, keys.nextPage):
		if q, ok := m.results.nextPage(); ok {
			return m.startLoading(m.cmdSearch(q))
		}
	case key.Matches(msg, keys.prevPage):
		if q, ok := m.results.prevPage(); ok {
			return m.startLoading(m.cmdSearch(q))
		}
	case key.Matches(msg, keys.enter):
		if item, ok := m.results.current(); ok && item.ApplicationNo != "" {
			return m.startLoading(m.cmdDetails(item.ApplicationNo))
		}
	case key.Matches(msg, keys.copy):
		if item, ok := m.results.current(); ok && item.ApplicationNo != "" {
			return m, cmdCopy(item.ApplicationNo)
		}
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.screen = m.backScreen()
		return m, nil
	case key.Matches(msg, keys.copy):
		return m, cmdCopy(m.detail.applicationNo)
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.update(msg)
	return m, cmd
}

// forward passes non-key messages such as cursor blinks to the active
// input.
func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenSearch:
		m.form, cmd = m.form.update(msg)
	case screenLookup:
		m.lookup, cmd = m.lookup.update(msg)
	case screenDetail:
		m.detail, cmd = m.detail.update(msg)
	}
	return m, cmd
}

func (m appModel) backScreen() screen {
	if m.hasResults {
		return screenResults
	}
	return screenSearch
}

func (m appModel) startLoading(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.loading = true
	return m, tea.Batch(cmd, m.spinner.Tick)
}

func (m *appModel) showError(err error) {
	m.errOverlay = &errorOverlayModel{message: humanizeError(err)}
}

func (m *appModel) setStatus(status string) {
	m.results.status = status
	m.detail.status = status
}

func (m appModel) cmdSearch(q models.SearchQuery) tea.Cmd {
	return func() tea.Msg {
		result, err := m.relay.Search(m.ctx, q)
		return searchDoneMsg{query: q, result: result, err: err}
	}
}

func (m appModel) cmdDetails(applicationNo string) tea.Cmd {
	return func() tea.Msg {
		details, err := m.relay.FileDetails(m.ctx, applicationNo)
		return detailsDoneMsg{applicationNo: applicationNo, details: details, err: err}
	}
}

func (m appModel) cmdVersion() tea.Cmd {
	return func() tea.Msg {
		version, err := m.relay.ServerVersion(m.ctx)
		return versionDoneMsg{version: version, err: err}
	}
}

func cmdCopy(applicationNo string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{applicationNo: applicationNo, err: copyToClipboard(applicationNo)}
	}
}

func (m appModel) View() string {
	if m.errOverlay != nil {
		return appStyle.Render(m.errOverlay.View())
	}
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.serverVersion))
	}
	if m.loading {
		return appStyle.Render(m.spinner.View() + " Waiting for the relay (a browser is solving the challenge)...")
	}

	switch m.screen {
	case screenLookup:
		return appStyle.Render(m.lookup.View())
	case screenResults:
		return appStyle.Render(m.results.View())
	case screenDetail:
		return appStyle.Render(m.detail.View())
	default:
		return appStyle.Render(m.form.View())
	}
}
