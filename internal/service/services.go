package service

import (
	"fmt"

	"github.com/MKhiriev/trademark-relay/internal/adapter"
	"github.com/MKhiriev/trademark-relay/internal/browser"
	"github.com/MKhiriev/trademark-relay/internal/challenge"
	"github.com/MKhiriev/trademark-relay/internal/config"
	"github.com/MKhiriev/trademark-relay/internal/logger"
	"github.com/MKhiriev/trademark-relay/internal/metrics"
	"github.com/MKhiriev/trademark-relay/internal/validators"
	"github.com/MKhiriev/trademark-relay/models"
)

type Services struct {
	ResearchService ResearchService
	AppInfoService  AppInfoService
}

// NewServices wires the relay from cfg: browser driver, challenge strategy
// and upstream transport are all chosen here, once, and handed to the
// research service.
func NewServices(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, recorder metrics.Recorder, logger *logger.Logger) (*Services, error) {
	launcher, err := browser.NewLauncher(cfg.Browser)
	if err != nil {
		return nil, fmt.Errorf("error creating browser launcher: %w", err)
	}

	acquirer, err := challenge.NewAcquirer(cfg.Challenge, cfg.Upstream.PageURL)
	if err != nil {
		return nil, fmt.Errorf("error creating challenge acquirer: %w", err)
	}

	research, err := NewResearchService(ResearchDeps{
		Launcher:  launcher,
		Acquirer:  acquirer,
		Adapter:   adapter.NewHTTPResearchAdapter(cfg.Upstream, cfg.Browser.UserAgent),
		Validator: validators.NewResearchValidator(),
	}, ResearchOptions{
		PageURL:        cfg.Upstream.PageURL,
		RequestTimeout: cfg.Server.RequestTimeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating research service: %w", err)
	}

	logger.Info().
		Str("driver", cfg.Browser.Driver).
		Str("strategy", cfg.Challenge.Strategy).
		Int("max_concurrent", cfg.Browser.MaxConcurrent).
		Msg("research service created")

	return &Services{
		ResearchService: NewResearchMetricsService(recorder).Wrap(research),
		AppInfoService:  NewAppInfoService(buildInfo, logger),
	}, nil
}
