package main

import (
	"fmt"

	"github.com/MKhiriev/char-archive/internal/adapter"
	"github.com/MKhiriev/char-archive/internal/client"
	"github.com/MKhiriev/char-archive/internal/config"
	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/internal/service"
	"github.com/MKhiriev/char-archive/internal/store"
	"github.com/MKhiriev/char-archive/internal/tui"
	"github.com/MKhiriev/char-archive/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("char-archive-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	sessions := store.NewFileSessionStore(cfg.Storage.SessionFile)
	notifier := tui.NewNotifier()

	services := service.NewClientServices(serverAdapter, sessions, notifier, *cfg, notifier.Refreshed, log)

	ui, err := tui.New(services, notifier, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
