package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/game-stats/internal/logger"
)

// DefaultInterval is used when a PeriodicWorker is created with a
// non-positive interval.
const DefaultInterval = time.Minute

// Job is one unit of periodic work.
type Job func(ctx context.Context) error

// PeriodicWorker calls a Job right away and then once per interval. A failing
// run is logged and the schedule continues.
type PeriodicWorker struct {
	name     string
	interval time.Duration
	job      Job

	logger *logger.Logger
}

func NewPeriodicWorker(name string, interval time.Duration, job Job, logger *logger.Logger) *PeriodicWorker {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &PeriodicWorker{
		name:     name,
		interval: interval,
		job:      job,
		logger:   logger.WithStr("worker", name),
	}
}

// Run implements [Worker]. Runs never overlap: a run that takes longer than
// the interval delays the next one.
func (w *PeriodicWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("worker started")
	defer w.logger.Info().Msg("worker stopped")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.runOnce(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (w *PeriodicWorker) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	if err := w.job(ctx); err != nil {
		w.logger.Err(err).Msg("worker run failed")
	}
}
