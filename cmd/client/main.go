package main

import (
	"fmt"

	"github.com/MKhiriev/trademark-relay/internal/adapter"
	"github.com/MKhiriev/trademark-relay/internal/client"
	"github.com/MKhiriev/trademark-relay/internal/config"
	"github.com/MKhiriev/trademark-relay/internal/logger"
	"github.com/MKhiriev/trademark-relay/internal/service"
	"github.com/MKhiriev/trademark-relay/internal/tui"
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

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("trademark-relay-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("trademark-relay-client", cfg.LogLevel)

	relayAdapter, err := adapter.NewHTTPRelayAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create relay adapter")
	}

	services := service.NewClientServices(relayAdapter, service.ClientAuth{
		SignKey: cfg.AuthSignKey,
		Issuer:  cfg.AuthIssuer,
	}, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
