package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordGeneration(t *testing.T) {
	before := testutil.ToFloat64(DishGenerationsTotal.WithLabelValues(OutcomeSuccess))
	beforeCandidates := testutil.ToFloat64(CandidatesEnumerated)

	RecordGeneration(OutcomeSuccess, 4, 1, 10*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(DishGenerationsTotal.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, beforeCandidates+4, testutil.ToFloat64(CandidatesEnumerated))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/v1/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/things/{id}", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/things/42", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/things/{id}", "418")))
}
