package store

import (
	"context"

	"github.com/MKhiriev/game-stats/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// StatisticsRepository reads player statistics from the source database.
type StatisticsRepository interface {
	// TopPlayers returns at most limit players ordered by the given counter,
	// highest first. Ties are broken by player name.
	TopPlayers(ctx context.Context, kind models.StatisticKind, limit uint64) ([]models.PlayerCount, error)
	// Ping checks that the source database is reachable.
	Ping(ctx context.Context) error
}

// ConiferRepository writes player statistics into the conifer database.
type ConiferRepository interface {
	// SaveStatistics upserts all records in one transaction and returns the
	// number of affected rows.
	SaveStatistics(ctx context.Context, stats []models.PlayerStatistics) (int64, error)
}

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
