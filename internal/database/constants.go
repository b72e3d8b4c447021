package database

// DefaultMinConnections is both the pool's idle floor and the smallest accepted MaxConns
const DefaultMinConnections = 2

// Embedded goose migrations
const (
	MigrationDialect = "postgres"
	MigrationsDir    = "migrations"
)

// Error messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
)

// Log messages
const (
	LogMsgConnectedToDatabase = "Connected to the database"
	LogMsgMigrationsApplied   = "Database migrations applied"
)
