package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/game-stats/internal/gamedata"
	"github.com/MKhiriev/game-stats/internal/logger"
	"github.com/MKhiriev/game-stats/internal/store"
	"github.com/google/uuid"
)

const (
	maxSaveAttempts   = 3
	defaultRetryDelay = time.Second
)

type syncService struct {
	client     gamedata.Client
	repository store.ConiferRepository
	classifier store.ErrorClassificator

	// retryDelay is doubled after every failed attempt.
	retryDelay time.Duration

	logger *logger.Logger
}

// NewSyncService builds a SyncService reading from client and writing through
// repository. classifier decides which save failures are retried.
func NewSyncService(client gamedata.Client, repository store.ConiferRepository, classifier store.ErrorClassificator, logger *logger.Logger) SyncService {
	return &syncService{
		client:     client,
		repository: repository,
		classifier: classifier,
		retryDelay: defaultRetryDelay,
		logger:     logger,
	}
}

// Sync implements SyncService.
//
// The statistics are fetched once. Saving is attempted up to three times
// while the failure is classified as [store.Retryable].
func (s *syncService) Sync(ctx context.Context) (SyncResult, error) {
	result := SyncResult{RunID: uuid.New()}
	log := s.logger.WithStr("run_id", result.RunID.String())
	ctx = log.WithContext(ctx)
	start := time.Now()

	stats, err := s.client.ListPlayerStatistics(ctx)
	if err != nil {
		log.Err(err).Msg("error fetching player statistics")
		return result, fmt.Errorf("%w: %w", ErrFetchingStatistics, err)
	}
	result.Players = len(stats)

	delay := s.retryDelay
	for {
		result.Attempts++

		n, err := s.repository.SaveStatistics(ctx, stats)
		if err == nil {
			result.RowsAffected = n
			break
		}

		classification := s.classifier.Classify(err)
		if classification != store.Retryable || result.Attempts >= maxSaveAttempts {
			log.Err(err).
				Int("attempt", result.Attempts).
				Stringer("classification", classification).
				Msg("error saving player statistics")
			return result, fmt.Errorf("%w: %w", ErrSavingStatistics, err)
		}

		log.Warn().Err(err).
			Int("attempt", result.Attempts).
			Dur("retry_in", delay).
			Msg("retrying save of player statistics")

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return result, fmt.Errorf("%w: %w", ErrSyncInterrupted, ctx.Err())
		case <-timer.C:
		}
		delay *= 2
	}

	log.Info().
		Int("players", result.Players).
		Int64("rows_affected", result.RowsAffected).
		Int("attempts", result.Attempts).
		Dur("duration", time.Since(start)).
		Msg("player statistics synchronized")

	return result, nil
}
