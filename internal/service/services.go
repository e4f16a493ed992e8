package service

import (
	"github.com/MKhiriev/game-stats/internal/logger"
	"github.com/MKhiriev/game-stats/internal/store"
)

// Services groups the services exposed by the stats API.
type Services struct {
	StatisticsService StatisticsService
}

func NewServices(repository store.StatisticsRepository, logger *logger.Logger) *Services {
	return &Services{
		StatisticsService: NewStatisticsService(repository, logger),
	}
}
