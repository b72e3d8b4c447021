package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/DishForge_Go/internal/catalog"
	"github.com/osse101/DishForge_Go/internal/config"
	"github.com/osse101/DishForge_Go/internal/repository"
	"github.com/osse101/DishForge_Go/internal/scheduler"
	"github.com/osse101/DishForge_Go/internal/worker"
)

// CatalogResyncJobName identifies the catalog re-sync job in logs
const CatalogResyncJobName = "catalog_resync"

// BackgroundJobs holds the running background job infrastructure
type BackgroundJobs struct {
	Workers   *worker.Pool
	Scheduler *scheduler.Scheduler
}

// StartBackgroundJobs schedules the periodic catalog re-sync. It returns nil when
// CATALOG_RESYNC_INTERVAL is unset. Changed catalogs purge cache when it is non-nil.
func StartBackgroundJobs(cfg *config.Config, repo repository.Catalog, cache worker.CachePurger) *BackgroundJobs {
	if !cfg.CatalogResyncEnabled() {
		return nil
	}

	loader := catalog.NewLoader(cfg.CatalogSchemaPath)
	job := &worker.CatalogResyncJob{
		Sync: func(ctx context.Context) (*catalog.SyncResult, error) {
			return catalog.LoadAndSync(ctx, loader, repo, cfg.CatalogPath)
		},
		Cache:   cache,
		Timeout: worker.DefaultCatalogResyncTimeout,
	}

	pool := worker.NewPool(worker.DefaultWorkerCount, worker.DefaultQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(CatalogResyncJobName, cfg.CatalogResyncInterval, job)

	slog.Info(LogMsgCatalogResyncScheduled, "interval", cfg.CatalogResyncInterval, "path", cfg.CatalogPath)
	return &BackgroundJobs{Workers: pool, Scheduler: sched}
}

// Stop stops scheduling new runs, then cancels and waits for the running one
func (b *BackgroundJobs) Stop() {
	if b == nil {
		return
	}
	b.Scheduler.Stop()
	b.Workers.Stop()
}
