package config

const (
	// Configuration file paths
	ConfigPathCatalog       = "configs/catalog.json"
	ConfigPathCatalogSchema = "configs/schemas/catalog.schema.json"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultDBMaxConns        = 20
	DefaultCatalogCacheSize  = 256
	DefaultMaxRecipeLength   = 16
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultServiceName       = "dishforge"
	DefaultVersion           = "dev"
	DefaultEnvironment       = "dev"
	DefaultDBName            = "dishforge"
	DefaultTrustedProxiesCSV = ""
)

// Error Messages
const (
	ErrMsgInvalidPort            = "invalid PORT value: %w"
	ErrMsgInvalidMaxRecipeLength = "invalid MAX_RECIPE_LENGTH value: %w"
	ErrMsgMaxRecipeLengthRange   = "MAX_RECIPE_LENGTH must be positive, got %d"
	ErrMsgAPIKeyRequired         = "API_KEY environment variable must be set for security"
)

// Environment validation messages
const (
	ErrMsgSchemaVersionMissing  = "ENV_SCHEMA_VERSION is not set, add it to your .env file (expected: %s)"
	ErrMsgSchemaVersionMismatch = "ENV_SCHEMA_VERSION mismatch: expected %s, got %s, your .env file may be outdated"
	ErrMsgMissingRequiredVars   = "missing required environment variables: %s"

	WarnMsgExampleDBPassword = "DB_PASSWORD is still the example value, set a real password"
	WarnMsgExampleAPIKey     = "API_KEY is still the example value, generate one with: openssl rand -hex 32"
	WarnMsgShortAPIKey       = "API_KEY is shorter than %d characters"
	WarnMsgTextLogsInProd    = "LOG_FORMAT is not json in a production environment"
	WarnMsgCatalogCacheOff   = "catalog cache is disabled, every generation reads the catalog from the database"
)

// Example values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
	MinAPIKeyLength   = 16
)
