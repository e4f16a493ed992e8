package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/game-stats/internal/logger"
	"github.com/MKhiriev/game-stats/internal/store"
	"github.com/MKhiriev/game-stats/models"
)

const (
	// DefaultLimit is used when a ranking request does not name a limit.
	DefaultLimit uint64 = 100
	// MaxLimit is the largest accepted ranking size.
	MaxLimit uint64 = 1000
)

type statisticsService struct {
	repository store.StatisticsRepository

	logger *logger.Logger
}

func NewStatisticsService(repository store.StatisticsRepository, logger *logger.Logger) StatisticsService {
	return &statisticsService{
		repository: repository,
		logger:     logger,
	}
}

func (s *statisticsService) TopBreakCount(ctx context.Context, limit uint64) ([]models.PlayerBreakCount, error) {
	return topPlayers(ctx, s, models.BreakCount, limit, func(c models.PlayerCount) models.PlayerBreakCount {
		return models.PlayerBreakCount{Player: c.Player, BreakCount: c.Count}
	})
}

func (s *statisticsService) TopBuildCount(ctx context.Context, limit uint64) ([]models.PlayerBuildCount, error) {
	return topPlayers(ctx, s, models.BuildCount, limit, func(c models.PlayerCount) models.PlayerBuildCount {
		return models.PlayerBuildCount{Player: c.Player, BuildCount: c.Count}
	})
}

func (s *statisticsService) TopPlayTicks(ctx context.Context, limit uint64) ([]models.PlayerPlayTicks, error) {
	return topPlayers(ctx, s, models.PlayTicks, limit, func(c models.PlayerCount) models.PlayerPlayTicks {
		return models.PlayerPlayTicks{Player: c.Player, PlayTicks: c.Count}
	})
}

func (s *statisticsService) TopVoteCount(ctx context.Context, limit uint64) ([]models.PlayerVoteCount, error) {
	return topPlayers(ctx, s, models.VoteCount, limit, func(c models.PlayerCount) models.PlayerVoteCount {
		return models.PlayerVoteCount{Player: c.Player, VoteCount: c.Count}
	})
}

func (s *statisticsService) Health(ctx context.Context) error {
	return s.repository.Ping(ctx)
}

// ValidateLimit checks that limit is within 1..MaxLimit.
func ValidateLimit(limit uint64) error {
	if limit == 0 || limit > MaxLimit {
		return fmt.Errorf("%w: %d, must be between 1 and %d", ErrInvalidLimit, limit, MaxLimit)
	}
	return nil
}

// topPlayers loads a ranking and converts each row into the typed record of
// the requested counter. The result is never nil.
func topPlayers[T any](ctx context.Context, s *statisticsService, kind models.StatisticKind, limit uint64, convert func(models.PlayerCount) T) ([]T, error) {
	if err := ValidateLimit(limit); err != nil {
		return nil, err
	}

	counts, err := s.repository.TopPlayers(ctx, kind, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("kind", string(kind)).
			Uint64("limit", limit).
			Msg("error loading ranking")
		return nil, err
	}

	result := make([]T, 0, len(counts))
	for _, c := range counts {
		result = append(result, convert(c))
	}

	return result, nil
}
