package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/DishForge_Go/internal/database"
	"github.com/osse101/DishForge_Go/internal/dish"
	"github.com/osse101/DishForge_Go/internal/logger"
)

const readinessTimeout = 2 * time.Second

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the process is serving HTTP
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}

// HandleReadyz reports ready once the database answers and the catalog has ingredient types.
// The catalog is not checked while the database is down.
// @Summary Readiness check
// @Description Returns OK when the database is reachable and the ingredient catalog is loaded
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool, svc dish.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()
		log := logger.FromContext(ctx)

		checks := map[string]string{CheckDatabase: CheckResultOK, CheckCatalog: CheckResultOK}

		if err := dbPool.Ping(ctx); err != nil {
			log.Error(LogMsgReadinessFailed, "check", CheckDatabase, "error", err)
			checks[CheckDatabase] = CheckResultUnreachable
			checks[CheckCatalog] = CheckResultSkipped
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  HealthStatusUnavailable,
				Message: MsgDatabaseUnreachable,
				Checks:  checks,
			})
			return
		}

		types, err := svc.GetIngredientTypes(ctx)
		switch {
		case err != nil:
			log.Error(LogMsgReadinessFailed, "check", CheckCatalog, "error", err)
			checks[CheckCatalog] = CheckResultFailed
		case len(types) == 0:
			log.Warn(LogMsgReadinessFailed, "check", CheckCatalog, "reason", CheckResultEmpty)
			checks[CheckCatalog] = CheckResultEmpty
		}
		if checks[CheckCatalog] != CheckResultOK {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  HealthStatusUnavailable,
				Message: MsgCatalogNotReady,
				Checks:  checks,
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK, Checks: checks})
	}
}
