// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"

	"github.com/google/uuid"
)

// Player identifies a game account.
type Player struct {
	UUID uuid.UUID `json:"uuid" validate:"required"`
	Name string    `json:"name" validate:"required"`
}

// PlayerBreakCount is the number of blocks a player has broken.
type PlayerBreakCount struct {
	Player     Player `json:"player"`
	BreakCount uint64 `json:"break_count"`
}

// PlayerBuildCount is the number of blocks a player has placed.
type PlayerBuildCount struct {
	Player     Player `json:"player"`
	BuildCount uint64 `json:"build_count"`
}

// PlayerPlayTicks is the time a player has spent online, in game ticks.
type PlayerPlayTicks struct {
	Player    Player `json:"player"`
	PlayTicks uint64 `json:"play_ticks"`
}

// PlayerVoteCount is the number of votes a player has cast.
type PlayerVoteCount struct {
	Player    Player `json:"player"`
	VoteCount uint64 `json:"vote_count"`
}

// MaxCounter is the largest counter the conifer database can store in a
// bigint column.
const MaxCounter uint64 = math.MaxInt64

// PlayerStatistics holds every counter of one player. It is the unit the
// syncer copies from the game data server into the conifer database.
type PlayerStatistics struct {
	Player     Player `json:"player"`
	BreakCount uint64 `json:"break_count" validate:"max=9223372036854775807"`
	BuildCount uint64 `json:"build_count" validate:"max=9223372036854775807"`
	PlayTicks  uint64 `json:"play_ticks" validate:"max=9223372036854775807"`
	VoteCount  uint64 `json:"vote_count" validate:"max=9223372036854775807"`
}

// PlayerCount is a single counter of one player, as read by ranking queries.
type PlayerCount struct {
	Player Player
	Count  uint64
}
