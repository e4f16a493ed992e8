package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/game-stats/internal/service"
	"github.com/MKhiriev/game-stats/models"
	"github.com/go-chi/chi/v5"
)

const limitQueryParam = "limit"

// getStatistics serves GET /api/statistics/{kind}?limit=N.
func (h *Handler) getStatistics(w http.ResponseWriter, r *http.Request) {
	kind, err := models.ParseStatisticKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	limit, err := parseLimit(r.URL.Query().Get(limitQueryParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	ranking, err := h.ranking(r.Context(), kind, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, ranking, http.StatusOK)
}

func (h *Handler) ranking(ctx context.Context, kind models.StatisticKind, limit uint64) (any, error) {
	svc := h.services.StatisticsService

	switch kind {
	case models.BreakCount:
		return svc.TopBreakCount(ctx, limit)
	case models.BuildCount:
		return svc.TopBuildCount(ctx, limit)
	case models.PlayTicks:
		return svc.TopPlayTicks(ctx, limit)
	case models.VoteCount:
		return svc.TopVoteCount(ctx, limit)
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownStatisticKind, kind)
	}
}

// parseLimit reads the limit query parameter. An absent value means
// [service.DefaultLimit].
func parseLimit(raw string) (uint64, error) {
	if raw == "" {
		return service.DefaultLimit, nil
	}

	limit, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a positive integer", service.ErrInvalidLimit, raw)
	}
	if err = service.ValidateLimit(limit); err != nil {
		return 0, err
	}

	return limit, nil
}
