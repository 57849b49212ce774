package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-factory-planner/internal/broker"
	"github.com/MKhiriev/go-factory-planner/internal/clock"
	"github.com/MKhiriev/go-factory-planner/internal/config"
	"github.com/MKhiriev/go-factory-planner/internal/handler"
	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/internal/metrics"
	"github.com/MKhiriev/go-factory-planner/internal/server"
	"github.com/MKhiriev/go-factory-planner/internal/service"
	"github.com/MKhiriev/go-factory-planner/internal/store"
	"github.com/MKhiriev/go-factory-planner/internal/workers"
	"github.com/MKhiriev/go-factory-planner/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("planner-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("server", cfg.Server).Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Str("dialect", db.Dialect()).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)
	m := metrics.New()
	hub := broker.NewHub(broker.DefaultBuffer, m, log)

	services, err := service.NewServices(repositories, hub, *cfg,
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, hub, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bg := workers.NewWorkers(
		workers.NewTokenPurgeWorker(services.AuthService, cfg.Server.TokenPurgeInterval, clock.Real(), log),
	)

	srv, err := server.NewServer(handlers, bg, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
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
