package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/game-stats/internal/logger"
	"github.com/MKhiriev/game-stats/models"
)

// upsertBatchSize bounds the number of rows per INSERT so that the
// statement stays under PostgreSQL's 65535 bind parameter limit.
const upsertBatchSize = 1000

// coniferRepository is the PostgreSQL-backed [ConiferRepository].
type coniferRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewConiferRepository constructs a [ConiferRepository] over db.
func NewConiferRepository(db *DB, logger *logger.Logger) ConiferRepository {
	logger.Debug().Msg("creating conifer repository")
	return &coniferRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// SaveStatistics implements [ConiferRepository]. Either every record is
// stored or none is.
func (r *coniferRepository) SaveStatistics(ctx context.Context, stats []models.PlayerStatistics) (int64, error) {
	log := logger.FromContext(ctx)

	if len(stats) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*coniferRepository.SaveStatistics").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	now := r.now().UTC()
	var affected int64
	for start := 0; start < len(stats); start += upsertBatchSize {
		batch := stats[start:min(start+upsertBatchSize, len(stats))]

		query, args, err := buildUpsertStatisticsQuery(batch, now)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).
				Str("func", "*coniferRepository.SaveStatistics").
				Int("batch_start", start).
				Int("batch_size", len(batch)).
				Msg("failed to upsert statistics")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		n, err := res.RowsAffected()
		if err == nil {
			affected += n
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*coniferRepository.SaveStatistics").Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Int64("affected", affected).Int("records", len(stats)).Msg("statistics saved")
	return affected, nil
}
