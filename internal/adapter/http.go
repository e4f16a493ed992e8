package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/game-stats/internal/config"
	"github.com/MKhiriev/game-stats/internal/logger"
	"github.com/MKhiriev/game-stats/internal/service"
	"github.com/MKhiriev/game-stats/models"
	"github.com/go-resty/resty/v2"
)

type httpStatisticsAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPStatisticsAdapter constructs a [service.StatisticsService] backed by
// the stats-api at cfg.URL. A URL without a scheme is taken as http.
func NewHTTPStatisticsAdapter(cfg config.StatsAPIConfig, logger *logger.Logger) (service.StatisticsService, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &httpStatisticsAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidAddress)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpStatisticsAdapter) TopBreakCount(ctx context.Context, limit uint64) ([]models.PlayerBreakCount, error) {
	var ranking []models.PlayerBreakCount
	if err := h.getRanking(ctx, models.BreakCount, limit, &ranking); err != nil {
		return nil, err
	}
	return ranking, nil
}

func (h *httpStatisticsAdapter) TopBuildCount(ctx context.Context, limit uint64) ([]models.PlayerBuildCount, error) {
	var ranking []models.PlayerBuildCount
	if err := h.getRanking(ctx, models.BuildCount, limit, &ranking); err != nil {
		return nil, err
	}
	return ranking, nil
}

func (h *httpStatisticsAdapter) TopPlayTicks(ctx context.Context, limit uint64) ([]models.PlayerPlayTicks, error) {
	var ranking []models.PlayerPlayTicks
	if err := h.getRanking(ctx, models.PlayTicks, limit, &ranking); err != nil {
		return nil, err
	}
	return ranking, nil
}

func (h *httpStatisticsAdapter) TopVoteCount(ctx context.Context, limit uint64) ([]models.PlayerVoteCount, error) {
	var ranking []models.PlayerVoteCount
	if err := h.getRanking(ctx, models.VoteCount, limit, &ranking); err != nil {
		return nil, err
	}
	return ranking, nil
}

// Health implements [service.StatisticsService] by calling GET /api/health.
func (h *httpStatisticsAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

// getRanking calls GET /api/statistics/{kind}?limit=N and decodes the JSON
// array into result.
func (h *httpStatisticsAdapter) getRanking(ctx context.Context, kind models.StatisticKind, limit uint64, result any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("kind", string(kind)).
		SetQueryParam("limit", strconv.FormatUint(limit, 10)).
		SetResult(result).
		Get("/api/statistics/{kind}")
	if err != nil {
		return fmt.Errorf("%s ranking request: %w", kind, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().
		Str("kind", string(kind)).
		Uint64("limit", limit).
		Str("trace_id", resp.Header().Get("X-Trace-ID")).
		Msg("ranking received")

	return nil
}
