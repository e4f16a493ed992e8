package http

import (
	"github.com/MKhiriev/game-stats/internal/logger"
	"github.com/MKhiriev/game-stats/internal/service"
)

type Handler struct {
	services *service.Services
	limiter  rateLimiter

	logger *logger.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithRateLimit limits all API requests to ratePerSecond with the given
// burst. A non-positive rate disables limiting.
func WithRateLimit(ratePerSecond float64, burst int) Option {
	return func(h *Handler) {
		h.limiter = newTokenBucketLimiter(ratePerSecond, burst)
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Bool("rate_limited", h.limiter != nil).Msg("http handler created")
	return h
}
