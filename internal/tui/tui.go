package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/trademark-relay/internal/logger"
	"github.com/MKhiriev/trademark-relay/internal/service"
	"github.com/MKhiriev/trademark-relay/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoRelayService = errors.New("no relay service for the terminal UI")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.RelayService == nil {
		return nil, errNoRelayService
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// MainLoop runs the terminal UI until the user quits.
func (t *TUI) MainLoop(ctx context.Context) error {
	model := newAppModel(ctx, t.services.RelayService, t.buildInfo)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		t.logger.Err(err).Msg("terminal UI stopped")
		return err
	}
	return nil
}
