package bootstrap

// File system permissions
const (
	DirPermission     = 0o755
	LogFilePermission = 0o644
)

// Logger files
const (
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"
	// LogFileRetentionCount is how many older session logs survive cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingDishForge   = "Starting DishForge"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// Catalog sync messages
const (
	LogMsgSyncingCatalog    = "Syncing ingredient catalog from JSON config..."
	LogMsgCatalogSynced     = "Ingredient catalog synced successfully"
	LogMsgCatalogUnchanged  = "Ingredient catalog config unchanged, sync skipped"
	LogMsgCatalogUpToDate   = "Ingredient catalog already matches config"
	ErrMsgFailedSyncCatalog = "failed to sync ingredient catalog"
)

// Service wiring messages
const (
	LogMsgCatalogCacheEnabled  = "Catalog cache enabled"
	LogMsgCatalogCacheDisabled = "Catalog cache disabled"
)

// Background job messages
const (
	LogMsgCatalogResyncScheduled = "Catalog re-sync scheduled"
	LogMsgStoppingBackgroundJobs = "Stopping background jobs"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabase      = "Closing database pool"
)
