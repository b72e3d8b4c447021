package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/DishForge_Go/internal/catalog"
	"github.com/osse101/DishForge_Go/internal/config"
	"github.com/osse101/DishForge_Go/internal/repository"
)

// SyncCatalog loads, validates and syncs the ingredient catalog file into the database.
// An unchanged file (same hash and mtime as the last sync) is skipped.
func SyncCatalog(ctx context.Context, cfg *config.Config, repo repository.Catalog) error {
	slog.Info(LogMsgSyncingCatalog, "path", cfg.CatalogPath)

	result, err := catalog.LoadAndSync(ctx, catalog.NewLoader(cfg.CatalogSchemaPath), repo, cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}

	switch {
	case result.Unchanged:
		slog.Info(LogMsgCatalogUnchanged)
	case result.Changed():
		slog.Info(LogMsgCatalogSynced,
			"types_inserted", result.TypesInserted,
			"types_updated", result.TypesUpdated,
			"types_skipped", result.TypesSkipped,
			"ingredients_inserted", result.IngredientsInserted,
			"ingredients_updated", result.IngredientsUpdated,
			"ingredients_skipped", result.IngredientsSkipped)
	default:
		slog.Info(LogMsgCatalogUpToDate)
	}

	return nil
}
