package models

import (
	"errors"
	"fmt"
)

// StatisticKind names one of the per-player counters.
type StatisticKind string

const (
	BreakCount StatisticKind = "break-count"
	BuildCount StatisticKind = "build-count"
	PlayTicks  StatisticKind = "play-ticks"
	VoteCount  StatisticKind = "vote-count"
)

// ErrUnknownStatisticKind is returned by ParseStatisticKind.
var ErrUnknownStatisticKind = errors.New("unknown statistic kind")

// ParseStatisticKind validates s as a StatisticKind.
func ParseStatisticKind(s string) (StatisticKind, error) {
	switch kind := StatisticKind(s); kind {
	case BreakCount, BuildCount, PlayTicks, VoteCount:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatisticKind, s)
	}
}

// Column returns the player_statistics column holding the counter.
func (k StatisticKind) Column() string {
	switch k {
	case BreakCount:
		return "break_count"
	case BuildCount:
		return "build_count"
	case PlayTicks:
		return "play_ticks"
	case VoteCount:
		return "vote_count"
	default:
		return ""
	}
}
