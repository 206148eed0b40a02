package workers

import (
	"context"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the application's background workers. The reset-token
// sweeper is registered only when both the sweep interval and the token TTL
// are configured; either being zero disables sweeping.
//
// Workers stop when ctx is cancelled.
func NewWorkers(ctx context.Context, storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Workers {
	ws := &Workers{}

	if cfg.Workers.CleanupInterval > 0 && cfg.App.ResetTokenTTL > 0 {
		ws.workers = append(ws.workers, &resetTokenSweeper{
			repository: storages.UserRepository,
			ttl:        cfg.App.ResetTokenTTL,
			interval:   cfg.Workers.CleanupInterval,
			ctx:        ctx,
			logger:     logger.GetChildLogger(),
		})
	}

	return ws
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
