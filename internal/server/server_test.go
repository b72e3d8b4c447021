package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DishForge_Go/internal/dish"
	"github.com/osse101/DishForge_Go/internal/domain"
	"github.com/osse101/DishForge_Go/internal/handler"
	"github.com/osse101/DishForge_Go/internal/logger"
	"github.com/osse101/DishForge_Go/mocks"
)

const testAPIKey = "test-key"

func newTestRouter(t *testing.T, svc dish.Service, cache handler.CatalogCache) http.Handler {
	t.Helper()
	pool := mocks.NewMockPool(t)
	pool.On("Ping", mock.Anything).Return(nil).Maybe()
	return NewRouter(testAPIKey, nil, pool, svc, 16, cache)
}

func doRequest(h http.Handler, method, target string, body io.Reader, withKey bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if withKey {
		req.Header.Set(HeaderAPIKey, testAPIKey)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PublicEndpoints(t *testing.T) {
	svc := mocks.NewMockDishService(t)
	svc.On("GetIngredientTypes", mock.Anything).Return([]domain.IngredientType{{ID: 1, Code: "d", Title: "Dough"}}, nil).Once()
	r := newTestRouter(t, svc, nil)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			rec := doRequest(r, http.MethodGet, path, nil, false)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestRouter_DishesRequireKey(t *testing.T) {
	r := newTestRouter(t, mocks.NewMockDishService(t), nil)

	rec := doRequest(r, http.MethodPost, "/api/v1/dishes", bytes.NewBufferString(`{"recipe":"dc"}`), false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_GenerateDishes(t *testing.T) {
	svc := mocks.NewMockDishService(t)
	svc.On("GenerateDishes", mock.Anything, "dc").Return([]domain.Dish{{
		Ingredients: []domain.DishIngredient{
			{TypeTitle: "Dough", IngredientTitle: "Thin", IngredientID: 1, Price: decimal.NewFromInt(1)},
			{TypeTitle: "Cheese", IngredientTitle: "Mozzarella", IngredientID: 4, Price: decimal.NewFromInt(3)},
		},
		TotalPrice: decimal.NewFromInt(4),
	}}, nil).Twice()
	r := newTestRouter(t, svc, nil)

	t.Run("post", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/api/v1/dishes", bytes.NewBufferString(`{"recipe":"dc"}`), true)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp handler.DishesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
		assert.Equal(t, "4.00", resp.Dishes[0].Price)
		assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
	})

	t.Run("get", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/api/v1/dishes?recipe=dc", nil, true)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouter_IngredientTypes(t *testing.T) {
	svc := mocks.NewMockDishService(t)
	svc.On("GetIngredientTypes", mock.Anything).Return([]domain.IngredientType{{ID: 1, Code: "d", Title: "Dough"}}, nil)
	r := newTestRouter(t, svc, nil)

	rec := doRequest(r, http.MethodGet, "/api/v1/ingredient-types", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"types":[{"id":1,"code":"d","title":"Dough"}]}`, rec.Body.String())
}

func TestRouter_AdminCache(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		r := newTestRouter(t, mocks.NewMockDishService(t), nil)
		rec := doRequest(r, http.MethodGet, "/api/v1/admin/cache/stats", nil, true)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("enabled", func(t *testing.T) {
		cache := mocks.NewMockCatalogCache(t)
		cache.On("Stats").Return(dish.CacheStats{Hits: 1})
		cache.On("Purge", mock.Anything).Return()
		r := newTestRouter(t, mocks.NewMockDishService(t), cache)

		rec := doRequest(r, http.MethodGet, "/api/v1/admin/cache/stats", nil, true)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(r, http.MethodPost, "/api/v1/admin/cache/purge", nil, true)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	r := newTestRouter(t, mocks.NewMockDishService(t), nil)

	rec := doRequest(r, http.MethodDelete, "/api/v1/dishes", nil, true)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger.InitLoggerWithWriter(logger.NewConfig("debug", "text", "dishforge", "test", "test", false), &buf)

	handler := loggingMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dishes", nil)
	req.Header.Set("X-API-Key", "secret-key-123")
	req.Header.Set("Authorization", "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, "TestAgent")
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	var seen string
	handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logger.GetRequestID(r.Context())
	}))

	t.Run("propagates caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dishes", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rec.Header().Get(HeaderRequestID))
	})

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dishes", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))
	})

	t.Run("health checks are not tagged", func(t *testing.T) {
		seen = ""
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Empty(t, seen)
		assert.Empty(t, rec.Header().Get(HeaderRequestID))
	})
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusTeapot, rw.statusCode)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
