package http

import (
	"github.com/MKhiriev/trademark-relay/internal/config"
	"github.com/MKhiriev/trademark-relay/internal/logger"
	"github.com/MKhiriev/trademark-relay/internal/metrics"
	"github.com/MKhiriev/trademark-relay/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server
	metrics  *metrics.Metrics

	logger *logger.Logger
}

// NewHandler returns a Handler serving services. A nil m disables the
// request metrics middleware and the /metrics route.
func NewHandler(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		metrics:  m,
		logger:   logger,
	}
}
