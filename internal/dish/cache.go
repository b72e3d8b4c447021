package dish

import (
	"context"
	"slices"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/DishForge_Go/internal/domain"
	"github.com/osse101/DishForge_Go/internal/logger"
	"github.com/osse101/DishForge_Go/internal/metrics"
	"github.com/osse101/DishForge_Go/internal/repository"
)

// CacheStats reports catalog cache activity
type CacheStats struct {
	Hits    int64  `json:"hits"`
	Misses  int64  `json:"misses"`
	Entries int    `json:"entries"`
	Size    int    `json:"size"`
	TTL     string `json:"ttl"`
}

// CachedCatalog sits in front of the catalog repositories and keeps the ingredient type list
// and per-type ingredient lists for a short TTL. Generated dishes are never cached.
// Callers get their own copy of every cached slice.
type CachedCatalog struct {
	types       repository.IngredientType
	ingredients repository.Ingredient

	typeCache       *expirable.LRU[string, []domain.IngredientType]
	ingredientCache *expirable.LRU[int, []domain.Ingredient]

	size   int
	ttl    time.Duration
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCachedCatalog creates a catalog cache holding up to size ingredient lists for ttl
func NewCachedCatalog(types repository.IngredientType, ingredients repository.Ingredient, size int, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{
		types:           types,
		ingredients:     ingredients,
		typeCache:       expirable.NewLRU[string, []domain.IngredientType](1, nil, ttl),
		ingredientCache: expirable.NewLRU[int, []domain.Ingredient](size, nil, ttl),
		size:            size,
		ttl:             ttl,
	}
}

// GetAllIngredientTypes implements repository.IngredientType
func (c *CachedCatalog) GetAllIngredientTypes(ctx context.Context) ([]domain.IngredientType, error) {
	if cached, ok := c.typeCache.Get(typesCacheKey); ok {
		c.hit(metrics.KindIngredientTypes)
		return slices.Clone(cached), nil
	}
	c.miss(metrics.KindIngredientTypes)

	types, err := c.types.GetAllIngredientTypes(ctx)
	if err != nil {
		return nil, err
	}
	c.typeCache.Add(typesCacheKey, slices.Clone(types))
	return types, nil
}

// GetAllIngredientsByTypeID implements repository.Ingredient
func (c *CachedCatalog) GetAllIngredientsByTypeID(ctx context.Context, typeID int) ([]domain.Ingredient, error) {
	if cached, ok := c.ingredientCache.Get(typeID); ok {
		c.hit(metrics.KindIngredients)
		return slices.Clone(cached), nil
	}
	c.miss(metrics.KindIngredients)

	ingredients, err := c.ingredients.GetAllIngredientsByTypeID(ctx, typeID)
	if err != nil {
		return nil, err
	}
	c.ingredientCache.Add(typeID, slices.Clone(ingredients))
	return ingredients, nil
}

// Purge drops every cached entry, e.g. after the catalog was re-synced
func (c *CachedCatalog) Purge(ctx context.Context) {
	c.typeCache.Purge()
	c.ingredientCache.Purge()
	logger.FromContext(ctx).Info(LogMsgCatalogCachePurged)
}

// Stats returns current cache statistics
func (c *CachedCatalog) Stats() CacheStats {
	return CacheStats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: c.typeCache.Len() + c.ingredientCache.Len(),
		Size:    c.size,
		TTL:     c.ttl.String(),
	}
}

func (c *CachedCatalog) hit(kind string) {
	c.hits.Add(1)
	metrics.CatalogCacheHits.WithLabelValues(kind).Inc()
}

func (c *CachedCatalog) miss(kind string) {
	c.misses.Add(1)
	metrics.CatalogCacheMisses.WithLabelValues(kind).Inc()
}
