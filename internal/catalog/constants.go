package catalog

// ConfigFileName is the sync metadata key of the catalog file
const ConfigFileName = "catalog.json"

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read catalog file: %w"
	ErrMsgParseConfigFailed    = "failed to parse catalog: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
	ErrMsgStatConfigFileFailed = "failed to stat catalog file: %w"
)

// Validation error messages
const (
	ErrMsgConfigNil       = "config is nil"
	ErrMsgNoTypesDefined  = "no ingredient types defined"
	ErrFmtTypeEmptyCode   = "%w: ingredient type at index %d has empty code"
	ErrFmtTypeLongCode    = "%w: ingredient type code %q must be a single character"
	ErrFmtTypeBlankCode   = "%w: ingredient type code %q must not be whitespace"
	ErrFmtTypeEmptyTitle  = "%w: ingredient type %q has empty title"
	ErrFmtIngEmptyTitle   = "%w: ingredient %d of type %q has empty title"
	ErrFmtIngInvalidPrice = "%w: ingredient %q of type %q has invalid price %q"
	ErrFmtIngNegPrice     = "%w: ingredient %q of type %q has negative price"
	ErrFmtDuplicateCode   = "%w: '%s'"
	ErrFmtDuplicateTitle  = "%w: '%s' in type '%s'"
)

// Database operation error messages
const (
	ErrMsgCheckFileChangeFailed     = "failed to check if file changed: %w"
	ErrMsgGetExistingTypesFailed    = "failed to get existing ingredient types: %w"
	ErrMsgGetExistingIngsFailed     = "failed to get existing ingredients for '%s': %w"
	ErrMsgInsertTypeFailed          = "failed to insert ingredient type '%s': %w"
	ErrMsgUpdateTypeFailed          = "failed to update ingredient type '%s': %w"
	ErrMsgInsertIngredientFailed    = "failed to insert ingredient '%s': %w"
	ErrMsgUpdateIngredientFailed    = "failed to update ingredient '%s': %w"
	ErrMsgGetSyncMetadataFailed     = "failed to get sync metadata: %w"
	ErrMsgCatalogSyncFailedOnLoad   = "catalog sync failed: %w"
	ErrMsgCatalogValidationFailed   = "catalog validation failed: %w"
	ErrMsgCatalogLoadFailedOnLaunch = "failed to load catalog: %w"
)

// Sync operation log messages
const (
	LogMsgConfigUnchanged      = "Catalog file unchanged, skipping sync"
	LogMsgSyncCompleted        = "Catalog sync completed"
	LogMsgInsertedType         = "Inserted ingredient type"
	LogMsgUpdatedType          = "Updated ingredient type"
	LogMsgInsertedIngredient   = "Inserted ingredient"
	LogMsgUpdatedIngredient    = "Updated ingredient"
	LogMsgUpdateMetadataFailed = "Failed to update sync metadata"
)
