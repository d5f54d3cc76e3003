package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/booknotes/internal/config"
	httphandler "github.com/MKhiriev/booknotes/internal/handler/http"
	"github.com/MKhiriev/booknotes/internal/logger"
	"github.com/MKhiriev/booknotes/internal/server"
	"github.com/MKhiriev/booknotes/internal/service"
	"github.com/MKhiriev/booknotes/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("booknotes-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, *cfg, log)

	handler, err := httphandler.NewHandler(services, cfg.Session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handler")
	}

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
