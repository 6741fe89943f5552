package handler

import (
	"github.com/MKhiriev/trademark-relay/internal/config"
	"github.com/MKhiriev/trademark-relay/internal/handler/http"
	"github.com/MKhiriev/trademark-relay/internal/logger"
	"github.com/MKhiriev/trademark-relay/internal/metrics"
	"github.com/MKhiriev/trademark-relay/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers for services. m may be nil when
// metrics are disabled.
func NewHandlers(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil || services.ResearchService == nil || services.AppInfoService == nil {
		return nil, errNoServicesProvided
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, m, logger),
	}, nil
}
