package gamedata

import "github.com/MKhiriev/game-stats/models"

const (
	serviceName                = "gamedata.v1.GameDataService"
	listPlayerStatisticsMethod = "/" + serviceName + "/ListPlayerStatistics"
)

// ListPlayerStatisticsRequest is the request message of
// GameDataService.ListPlayerStatistics. It carries no filters.
type ListPlayerStatisticsRequest struct{}

// ListPlayerStatisticsResponse is the response message of
// GameDataService.ListPlayerStatistics.
type ListPlayerStatisticsResponse struct {
	Statistics []models.PlayerStatistics `json:"statistics" validate:"dive"`
}
