package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/game-stats/internal/config"
	"github.com/MKhiriev/game-stats/internal/gamedata"
	"github.com/MKhiriev/game-stats/internal/logger"
	"github.com/MKhiriev/game-stats/internal/service"
	"github.com/MKhiriev/game-stats/internal/store"
	"github.com/MKhiriev/game-stats/internal/workers"
)

const syncInterval = time.Minute

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("conifer-syncer")
	cfg, err := config.GetSyncerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Object("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("conifer-syncer failed")
	}

	log.Info().Msg("conifer-syncer stopped gracefully")
}

func run(ctx context.Context, cfg *config.SyncerConfig, log *logger.Logger) error {
	db, err := store.NewConnectPostgres(ctx, cfg.ConiferDatabase, log)
	if err != nil {
		return fmt.Errorf("error connecting to conifer database: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return err
	}

	client, err := gamedata.NewClient(cfg.GameDataServer, log)
	if err != nil {
		return err
	}
	defer client.Close()

	syncService := service.NewSyncService(client, store.NewConiferRepository(db, log), db, log)

	worker := workers.NewPeriodicWorker("conifer-sync", syncInterval, func(ctx context.Context) error {
		_, err := syncService.Sync(ctx)
		return err
	}, log)

	workers.NewWorkers(worker).Run(ctx)

	return nil
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
