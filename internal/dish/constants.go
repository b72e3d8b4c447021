package dish

// ==================== Enumeration ====================

// cancelCheckInterval is how many candidates are enumerated between context checks
const cancelCheckInterval = 1024

// ==================== Error Messages ====================

// Validation error messages
const (
	ErrMsgEmptyRecipe = "recipe must not be empty"
)

// Repository error messages
const (
	ErrMsgGetIngredientTypesFailed = "failed to get ingredient types: %w"
	ErrMsgGetIngredientsFailedFmt  = "failed to get ingredients for type %q: %w"
	ErrMsgGenerationCancelled      = "dish generation cancelled: %w"
)

// ==================== Log Messages ====================

// Service operation log messages
const (
	LogMsgGenerateDishesCalled     = "GenerateDishes called"
	LogMsgDishesGenerated          = "Dishes generated"
	LogMsgInvalidRecipeCodes       = "Recipe references unknown ingredient types"
	LogMsgInsufficientIngredients  = "Not enough ingredients for recipe"
	LogMsgGetIngredientTypesCalled = "GetIngredientTypes called"
)

// Cache log messages
const (
	LogMsgCatalogCachePurged = "Catalog cache purged"
)

// ==================== Cache Keys ====================

// typesCacheKey is the single key the ingredient type catalog is cached under
const typesCacheKey = "ingredient_types"
