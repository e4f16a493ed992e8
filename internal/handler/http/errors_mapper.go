package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/game-stats/internal/service"
	"github.com/MKhiriev/game-stats/internal/store"
	"github.com/MKhiriev/game-stats/models"
)

var errorStatusMap = map[error]int{
	models.ErrUnknownStatisticKind: http.StatusBadRequest,
	service.ErrInvalidLimit:        http.StatusBadRequest,

	store.ErrUnsupportedStatistic: http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrCounterOutOfRange:    http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
