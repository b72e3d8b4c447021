package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/DishForge_Go/internal/catalog"
	"github.com/osse101/DishForge_Go/internal/logger"
)

// CachePurger drops cached catalog reads
type CachePurger interface {
	Purge(ctx context.Context)
}

// CatalogResyncJob re-syncs the catalog file into storage and purges the catalog cache
// when the sync wrote anything.
type CatalogResyncJob struct {
	Sync    func(ctx context.Context) (*catalog.SyncResult, error)
	Cache   CachePurger // nil when caching is disabled
	Timeout time.Duration
}

// Process implements Job
func (j *CatalogResyncJob) Process(ctx context.Context) error {
	if j.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}

	result, err := j.Sync(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCatalogResyncFailed, err)
	}

	log := logger.FromContext(ctx)
	if result.Unchanged || !result.Changed() {
		log.Debug(LogMsgCatalogResyncUnchanged)
		return nil
	}

	log.Info(LogMsgCatalogResynced,
		"types_inserted", result.TypesInserted,
		"types_updated", result.TypesUpdated,
		"ingredients_inserted", result.IngredientsInserted,
		"ingredients_updated", result.IngredientsUpdated)
	if j.Cache != nil {
		j.Cache.Purge(ctx)
	}
	return nil
}
