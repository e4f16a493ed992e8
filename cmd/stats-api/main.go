package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/game-stats/internal/config"
	myHTTP "github.com/MKhiriev/game-stats/internal/handler/http"
	"github.com/MKhiriev/game-stats/internal/logger"
	"github.com/MKhiriev/game-stats/internal/server"
	"github.com/MKhiriev/game-stats/internal/service"
	"github.com/MKhiriev/game-stats/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("stats-api")
	cfg, err := config.GetAPIConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Object("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.SourceDatabase, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to source database")
	}

	services := service.NewServices(store.NewStatisticsRepository(db, log), log)
	handler := myHTTP.NewHandler(services, log, myHTTP.WithRateLimit(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst))

	srv, err := server.NewServer(handler.Init(), cfg.HTTP, log)
	if err != nil {
		db.Close()
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()

	if err = db.Close(); err != nil {
		log.Error().Err(err).Msg("error closing source database")
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
