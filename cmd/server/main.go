package main

import (
	"context"
	"fmt"

	"github.com/asalimova/word-inventory/internal/config"
	"github.com/asalimova/word-inventory/internal/enrich"
	httphandler "github.com/asalimova/word-inventory/internal/handler/http"
	"github.com/asalimova/word-inventory/internal/logger"
	"github.com/asalimova/word-inventory/internal/server"
	"github.com/asalimova/word-inventory/internal/service"
	"github.com/asalimova/word-inventory/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("word-inventory-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	generator := enrich.NewGenerator(cfg.Enrich, log)
	services := service.NewServices(storages, generator, cfg, log)
	handler := httphandler.NewHandler(services, cfg.App.Version, log)

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
