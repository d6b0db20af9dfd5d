package workers

import (
	"context"

	"github.com/MKhiriev/char-archive/internal/config"
	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the server's background jobs. A job with a zero
// interval is not scheduled.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.SessionSweepInterval > 0 {
		w.workers = append(w.workers, NewSessionSweeper(storages.SessionRepository, cfg.SessionSweepInterval, logger))
	}
	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
