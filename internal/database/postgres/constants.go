package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Catalog Reads
const (
	ErrMsgFailedToGetIngredientTypes = "failed to get ingredient types: %w"
	ErrMsgFailedToGetIngredients     = "failed to get ingredients for type %d: %w"
	ErrMsgInvalidStoredPrice         = "invalid stored price %q: %w"
)

// Error Messages - Catalog Writes
const (
	ErrMsgFailedToInsertIngredientType = "failed to insert ingredient type %q: %w"
	ErrMsgFailedToUpdateIngredientType = "failed to update ingredient type %d: %w"
	ErrMsgFailedToInsertIngredient     = "failed to insert ingredient %q: %w"
	ErrMsgFailedToUpdateIngredient     = "failed to update ingredient %d: %w"
)

// Error Messages - Sync Metadata
const (
	ErrMsgFailedToGetSyncMetadata    = "failed to get sync metadata: %w"
	ErrMsgFailedToUpsertSyncMetadata = "failed to upsert sync metadata: %w"
)
