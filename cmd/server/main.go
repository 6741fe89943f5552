package main

import (
	"fmt"

	"github.com/MKhiriev/trademark-relay/internal/config"
	"github.com/MKhiriev/trademark-relay/internal/handler"
	"github.com/MKhiriev/trademark-relay/internal/logger"
	"github.com/MKhiriev/trademark-relay/internal/metrics"
	"github.com/MKhiriev/trademark-relay/internal/server"
	"github.com/MKhiriev/trademark-relay/internal/service"
	"github.com/MKhiriev/trademark-relay/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("trademark-relay", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("trademark-relay", cfg.LogLevel)
	log.Debug().
		Str("address", cfg.ListenAddress()).
		Str("driver", cfg.Browser.Driver).
		Str("strategy", cfg.Challenge.Strategy).
		Str("api_url", cfg.Upstream.APIURL).
		Bool("auth", cfg.Server.IsAuthEnabled()).
		Msg("received configs")

	var m *metrics.Metrics
	var recorder metrics.Recorder = metrics.Nop()
	if cfg.Server.IsMetricsEnabled() {
		m = metrics.New()
		recorder = m
	}

	services, err := service.NewServices(cfg, buildInfo, recorder, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
