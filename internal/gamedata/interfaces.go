package gamedata

//go:generate mockgen -source=interfaces.go -destination=../mock/gamedata_client_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/game-stats/models"
)

// Client reads player statistics from the game data server.
type Client interface {
	// ListPlayerStatistics returns every counter of every known player.
	ListPlayerStatistics(ctx context.Context) ([]models.PlayerStatistics, error)

	// Close releases the underlying connection.
	Close() error
}
