package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/trademark-relay/internal/logger"
	"github.com/MKhiriev/trademark-relay/internal/service"
	"github.com/MKhiriev/trademark-relay/internal/tui"
)

var errNoUI = errors.New("no terminal UI to run")

// UI is the interactive front end driven by App.
type UI interface {
	MainLoop(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       UI

	logger *logger.Logger
}

var _ UI = (*tui.TUI)(nil)

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run shows the UI until the user quits or the process is interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if version, err := a.services.RelayService.ServerVersion(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("relay version unavailable")
	} else {
		a.logger.Info().Str("relay_version", version).Msg("connected to relay")
	}

	return a.ui.MainLoop(ctx)
}
