package workers

import (
	"context"

	"github.com/avkarpov/itemvault/internal/config"
	"github.com/avkarpov/itemvault/internal/logger"
	"github.com/avkarpov/itemvault/internal/store"
)

// Workers aggregates the application's startup workers and runs them
// sequentially. A failing worker aborts the run so that the caller can treat
// startup tasks as a unit.
type Workers struct {
	workers []Worker
}

// NewWorkers assembles the standard startup workers: currently only the
// superuser seeder.
func NewWorkers(repos *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewSeedSuperuserWorker(repos.UserRepository, cfg.Auth, logger),
		},
	}
}

// Run executes every worker in registration order and stops at the first
// failure.
func (w *Workers) Run(ctx context.Context) error {
	for _, worker := range w.workers {
		if err := worker.Run(ctx); err != nil {
			return err
		}
	}
	return nil
}
