package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Dish generation metric names
const (
	MetricNameDishGenerationsTotal   = "dish_generations_total"
	MetricNameDishGenerationDuration = "dish_generation_duration_seconds"
	MetricNameCandidatesEnumerated   = "dish_candidates_enumerated_total"
	MetricNameDishesGenerated        = "dishes_generated"
)

// Catalog cache metric names
const (
	MetricNameCatalogCacheHits   = "catalog_cache_hits_total"
	MetricNameCatalogCacheMisses = "catalog_cache_misses_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Dish generation metric help text
const (
	HelpTextDishGenerationsTotal   = "Total number of dish generation requests by outcome"
	HelpTextDishGenerationDuration = "Dish generation latency in seconds, including catalog retrieval"
	HelpTextCandidatesEnumerated   = "Total number of candidate ingredient assignments enumerated"
	HelpTextDishesGenerated        = "Number of distinct dishes returned per successful generation"
)

// Catalog cache metric help text
const (
	HelpTextCatalogCacheHits   = "Total number of catalog cache hits"
	HelpTextCatalogCacheMisses = "Total number of catalog cache misses"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelKind    = "kind"
)

// Generation outcomes
const (
	OutcomeSuccess                 = "success"
	OutcomeInvalidRecipeCode       = "invalid_recipe_code"
	OutcomeInsufficientIngredients = "insufficient_ingredients"
	OutcomeInvalidInput            = "invalid_input"
	OutcomeError                   = "error"
)

// Catalog cache kinds
const (
	KindIngredientTypes = "ingredient_types"
	KindIngredients     = "ingredients"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// DishCountBuckets spans single dishes up to very wide recipes
var DishCountBuckets = []float64{0, 1, 5, 10, 50, 100, 500, 1000, 5000, 10000, 50000}

// UnmatchedRoute labels requests that did not hit a registered route
const UnmatchedRoute = "unmatched"
