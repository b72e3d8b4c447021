package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"

	ErrMsgGenerateDishesFailed    = "Failed to generate dishes"
	ErrMsgGetIngredientTypesFail  = "Failed to retrieve ingredient types"
	ErrMsgCatalogCacheUnavailable = "Catalog cache is disabled"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError        = "Something went wrong"
	ErrMsgUnknownIngredientCodes    = "Recipe uses unknown ingredient type codes"
	ErrMsgNotEnoughIngredients      = "Not enough ingredients of a type to fill the recipe"
	ErrMsgInvalidInputError         = "Invalid request. Please check your inputs."
	ErrMsgRequestCancelledError     = "Request was cancelled"
	ErrMsgIngredientTypeNotFoundErr = "Ingredient type not found"
)

// Success messages
const (
	MsgCatalogCachePurged = "Catalog cache purged"
)

// Validation messages, keyed by validator tag
const (
	ValidationMsgRequired    = "This field is required"
	ValidationMsgMaxFmt      = "Must be at most %s characters"
	ValidationMsgMinFmt      = "Must be at least %s characters"
	ValidationMsgRecipe      = "Must not contain whitespace or control characters"
	ValidationMsgExcludesAll = "Contains invalid characters"
	ValidationMsgInvalid     = "Invalid value"
	ValidationMsgBadFormat   = "Invalid request format"
)

// Health check results
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"

	CheckDatabase = "database"
	CheckCatalog  = "catalog"

	CheckResultOK          = "ok"
	CheckResultUnreachable = "unreachable"
	CheckResultEmpty       = "empty"
	CheckResultFailed      = "failed"
	CheckResultSkipped     = "skipped"

	MsgDatabaseUnreachable = "database connection failed"
	MsgCatalogNotReady     = "ingredient catalog is not loaded"

	LogMsgReadinessFailed = "Readiness check failed"
)
