package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/game-stats/internal/logger"
	"github.com/MKhiriev/game-stats/models"
)

// statisticsRepository is the PostgreSQL-backed [StatisticsRepository].
type statisticsRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewStatisticsRepository constructs a [StatisticsRepository] over db.
func NewStatisticsRepository(db *DB, logger *logger.Logger) StatisticsRepository {
	logger.Debug().Msg("creating statistics repository")
	return &statisticsRepository{
		db:     db,
		logger: logger,
	}
}

// TopPlayers implements [StatisticsRepository].
func (r *statisticsRepository) TopPlayers(ctx context.Context, kind models.StatisticKind, limit uint64) ([]models.PlayerCount, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTopPlayersQuery(kind, limit)
	if err != nil {
		log.Err(err).Str("func", "*statisticsRepository.TopPlayers").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*statisticsRepository.TopPlayers").
			Str("kind", string(kind)).
			Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.PlayerCount, 0, limit)
	for rows.Next() {
		var (
			pc    models.PlayerCount
			count int64
		)
		if err = rows.Scan(&pc.Player.UUID, &pc.Player.Name, &count); err != nil {
			log.Err(err).Str("func", "*statisticsRepository.TopPlayers").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if count < 0 {
			log.Error().Str("func", "*statisticsRepository.TopPlayers").Int64("count", count).Msg("negative counter in database")
			return nil, fmt.Errorf("%w: %s=%d for player %s", ErrCounterOutOfRange, kind.Column(), count, pc.Player.UUID)
		}
		pc.Count = uint64(count)
		result = append(result, pc)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*statisticsRepository.TopPlayers").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// Ping implements [StatisticsRepository].
func (r *statisticsRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
