package service

import (
	"context"

	"github.com/MKhiriev/game-stats/models"
	"github.com/google/uuid"
)

// StatisticsService ranks players of the source database by one of their
// counters.
type StatisticsService interface {
	TopBreakCount(ctx context.Context, limit uint64) ([]models.PlayerBreakCount, error)
	TopBuildCount(ctx context.Context, limit uint64) ([]models.PlayerBuildCount, error)
	TopPlayTicks(ctx context.Context, limit uint64) ([]models.PlayerPlayTicks, error)
	TopVoteCount(ctx context.Context, limit uint64) ([]models.PlayerVoteCount, error)

	// Health reports whether the source database is reachable.
	Health(ctx context.Context) error
}

// SyncService copies player statistics from the game data server into the
// conifer database.
type SyncService interface {
	Sync(ctx context.Context) (SyncResult, error)
}

// SyncResult describes one completed Sync run.
type SyncResult struct {
	RunID        uuid.UUID
	Players      int
	RowsAffected int64
	Attempts     int
}
