package bootstrap

import (
	"log/slog"

	"github.com/osse101/DishForge_Go/internal/config"
	"github.com/osse101/DishForge_Go/internal/dish"
	"github.com/osse101/DishForge_Go/internal/handler"
	"github.com/osse101/DishForge_Go/internal/repository"
)

// CatalogRepository is everything the app needs from catalog storage
type CatalogRepository interface {
	repository.IngredientType
	repository.Ingredient
}

// Services holds the wired application services
type Services struct {
	Dish dish.Service
	// Cache is nil when catalog caching is disabled
	Cache handler.CatalogCache
}

// InitializeServices wires the dish service, inserting the catalog cache when configured
func InitializeServices(cfg *config.Config, repo CatalogRepository) *Services {
	if !cfg.CatalogCacheEnabled() {
		slog.Info(LogMsgCatalogCacheDisabled)
		return &Services{Dish: dish.NewService(repo, repo)}
	}

	cached := dish.NewCachedCatalog(repo, repo, cfg.CatalogCacheSize, cfg.CatalogCacheTTL)
	slog.Info(LogMsgCatalogCacheEnabled, "size", cfg.CatalogCacheSize, "ttl", cfg.CatalogCacheTTL)

	return &Services{
		Dish:  dish.NewService(cached, cached),
		Cache: cached,
	}
}
