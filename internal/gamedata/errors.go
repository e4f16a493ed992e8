package gamedata

import "errors"

var (
	ErrEmptyEndpoint       = errors.New("game data server endpoint is empty")
	ErrInvalidEndpoint     = errors.New("invalid game data server endpoint")
	ErrUnsupportedScheme   = errors.New("unsupported game data server endpoint scheme")
	ErrCreatingClient      = errors.New("error creating game data client")
	ErrFetchingStatistics  = errors.New("error fetching player statistics")
	ErrInvalidPlayerRecord = errors.New("invalid player record")
)
