package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-factory-planner/internal/adapter"
	"github.com/MKhiriev/go-factory-planner/internal/client"
	"github.com/MKhiriev/go-factory-planner/internal/clock"
	"github.com/MKhiriev/go-factory-planner/internal/config"
	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/internal/service"
	"github.com/MKhiriev/go-factory-planner/internal/tui"
	"github.com/MKhiriev/go-factory-planner/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("planner-client").Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.NewClientLogger("planner-client", cfg.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	authority, err := adapter.NewHTTPRemoteAuthority(cfg.Adapter, cfg.Sync.ReconnectDelay, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote authority")
	}

	services := service.NewClientServices(ctx, authority, cfg.Sync, clock.Real(), log)
	ui := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	app := client.NewApp(services, ui, cfg, log)

	if err = app.Run(ctx); err != nil {
		stop()
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
