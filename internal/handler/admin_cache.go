package handler

import (
	"context"
	"net/http"

	"github.com/osse101/DishForge_Go/internal/dish"
)

// CatalogCache is the part of dish.CachedCatalog exposed to admins
type CatalogCache interface {
	Stats() dish.CacheStats
	Purge(ctx context.Context)
}

// AdminCacheHandler handles admin cache operations
type AdminCacheHandler struct {
	cache CatalogCache
}

// NewAdminCacheHandler creates a new admin cache handler. cache may be nil when caching is disabled.
func NewAdminCacheHandler(cache CatalogCache) *AdminCacheHandler {
	return &AdminCacheHandler{cache: cache}
}

// HandleGetCacheStats returns catalog cache statistics
// @Summary Get catalog cache stats
// @Description Returns catalog cache hit/miss statistics for monitoring (admin only)
// @Tags admin
// @Produce json
// @Success 200 {object} dish.CacheStats
// @Failure 404 {object} ErrorResponse "Cache disabled"
// @Router /api/v1/admin/cache/stats [get]
func (h *AdminCacheHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	if h.cache == nil {
		respondError(w, http.StatusNotFound, ErrMsgCatalogCacheUnavailable)
		return
	}
	respondJSON(w, http.StatusOK, h.cache.Stats())
}

// HandlePurgeCache drops every cached catalog entry
// @Summary Purge catalog cache
// @Description Forces the next requests to read the catalog from the database (admin only)
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse "Cache disabled"
// @Router /api/v1/admin/cache/purge [post]
func (h *AdminCacheHandler) HandlePurgeCache(w http.ResponseWriter, r *http.Request) {
	if h.cache == nil {
		respondError(w, http.StatusNotFound, ErrMsgCatalogCacheUnavailable)
		return
	}
	h.cache.Purge(r.Context())
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCatalogCachePurged})
}
