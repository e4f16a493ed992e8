package service

import "errors"

var (
	ErrInvalidLimit = errors.New("invalid limit")

	ErrFetchingStatistics = errors.New("error fetching statistics from game data server")
	ErrSavingStatistics   = errors.New("error saving statistics to conifer database")
	ErrSyncInterrupted    = errors.New("sync interrupted")
)
