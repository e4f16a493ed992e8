package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/game-stats/models"
	"github.com/google/uuid"
)

const playerStatisticsTable = "player_statistics"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildTopPlayersQuery builds the ranking query for one counter.
func buildTopPlayersQuery(kind models.StatisticKind, limit uint64) (string, []any, error) {
	column := kind.Column()
	if column == "" {
		return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedStatistic, kind)
	}

	return psql.
		Select("uuid", "name", column).
		From(playerStatisticsTable).
		OrderBy(column+" DESC", "name ASC").
		Limit(limit).
		ToSql()
}

// buildUpsertStatisticsQuery builds a single multi-row upsert for stats.
// Every player may appear once and every counter must fit into a bigint.
func buildUpsertStatisticsQuery(stats []models.PlayerStatistics, now time.Time) (string, []any, error) {
	insert := psql.
		Insert(playerStatisticsTable).
		Columns("uuid", "name", "break_count", "build_count", "play_ticks", "vote_count", "updated_at")

	seen := make(map[uuid.UUID]struct{}, len(stats))
	for _, s := range stats {
		if _, dup := seen[s.Player.UUID]; dup {
			return "", nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, s.Player.UUID)
		}
		seen[s.Player.UUID] = struct{}{}

		counters, err := counterArgs(s)
		if err != nil {
			return "", nil, err
		}

		values := make([]any, 0, 7)
		values = append(values, s.Player.UUID, s.Player.Name)
		values = append(values, counters...)
		insert = insert.Values(append(values, now)...)
	}

	return insert.Suffix(`ON CONFLICT (uuid) DO UPDATE SET
		name = EXCLUDED.name,
		break_count = EXCLUDED.break_count,
		build_count = EXCLUDED.build_count,
		play_ticks = EXCLUDED.play_ticks,
		vote_count = EXCLUDED.vote_count,
		updated_at = EXCLUDED.updated_at`).
		ToSql()
}

// counterArgs returns the counters of s in column order as bigint values.
func counterArgs(s models.PlayerStatistics) ([]any, error) {
	counters := []struct {
		column string
		value  uint64
	}{
		{"break_count", s.BreakCount},
		{"build_count", s.BuildCount},
		{"play_ticks", s.PlayTicks},
		{"vote_count", s.VoteCount},
	}

	args := make([]any, 0, len(counters))
	for _, c := range counters {
		if c.value > models.MaxCounter {
			return nil, fmt.Errorf("%w: %s=%d for player %s", ErrCounterOutOfRange, c.column, c.value, s.Player.UUID)
		}
		args = append(args, int64(c.value))
	}

	return args, nil
}
