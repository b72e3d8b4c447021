package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/osse101/DishForge_Go/internal/dish"
	"github.com/osse101/DishForge_Go/internal/domain"
	"github.com/osse101/DishForge_Go/internal/handler"
)

// Client defaults
const (
	DefaultClientTimeout = 10 * time.Second
	DefaultMaxRetries    = 3
	DefaultRetryInterval = 500 * time.Millisecond
)

// APIError is a non-2xx, non-5xx answer from the dish API
type APIError struct {
	Status    int
	Message   string
	Codes     []string
	Code      string
	Required  int
	Available *int
	Fields    map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.Status, e.Message)
}

// APIClient handles communication with the dish API
type APIClient struct {
	BaseURL       string
	Client        *http.Client
	APIKey        string
	MaxRetries    uint64
	RetryInterval time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: DefaultClientTimeout,
		},
		APIKey:        apiKey,
		MaxRetries:    DefaultMaxRetries,
		RetryInterval: DefaultRetryInterval,
	}
}

// doRequest performs an HTTP request, retrying transport failures and 5xx answers
func (c *APIClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path

	attempt := func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			resp.Body.Close()
			return nil, fmt.Errorf("server error: %d", resp.StatusCode)
		}
		return resp, nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.RetryInterval
	retry := backoff.WithContext(backoff.WithMaxRetries(policy, c.MaxRetries), ctx)

	resp, err := backoff.RetryNotifyWithData(attempt, retry, func(err error, delay time.Duration) {
		slog.Warn("Retrying API request", "path", path, "error", err, "delay", delay)
	})
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	return resp, nil
}

// call performs the request and decodes a 2xx body into out
func call[T any](ctx context.Context, c *APIClient, method, path string, body any) (*T, error) {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, decodeAPIError(resp)
	}

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var body struct {
		handler.ErrorResponse
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Error != "" {
			apiErr.Message = body.Error
		}
		apiErr.Codes = body.Codes
		apiErr.Code = body.Code
		apiErr.Required = body.Required
		apiErr.Available = body.Available
		apiErr.Fields = body.Fields
	}
	return apiErr
}

// GenerateDishes asks the API for every distinct dish of a recipe
func (c *APIClient) GenerateDishes(ctx context.Context, recipe string) (*handler.DishesResponse, error) {
	return call[handler.DishesResponse](ctx, c, http.MethodPost, "/api/v1/dishes", handler.GenerateDishesRequest{Recipe: recipe})
}

// GetIngredientTypes lists the ingredient types usable in recipes
func (c *APIClient) GetIngredientTypes(ctx context.Context) ([]domain.IngredientType, error) {
	resp, err := call[handler.IngredientTypesResponse](ctx, c, http.MethodGet, "/api/v1/ingredient-types", nil)
	if err != nil {
		return nil, err
	}
	return resp.Types, nil
}

// GetCacheStats returns the API's catalog cache statistics
func (c *APIClient) GetCacheStats(ctx context.Context) (*dish.CacheStats, error) {
	return call[dish.CacheStats](ctx, c, http.MethodGet, "/api/v1/admin/cache/stats", nil)
}

// PurgeCache empties the API's catalog cache
func (c *APIClient) PurgeCache(ctx context.Context) (string, error) {
	resp, err := call[handler.SuccessResponse](ctx, c, http.MethodPost, "/api/v1/admin/cache/purge", nil)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Healthz reports whether the API liveness endpoint answers OK
func (c *APIClient) Healthz(ctx context.Context) error {
	_, err := call[handler.HealthResponse](ctx, c, http.MethodGet, "/healthz", nil)
	return err
}

// IsAPIError reports whether err carries an API answer and returns it
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}
