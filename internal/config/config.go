package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string // empty logs to stdout only
	ServiceName string
	Version     string
	Environment string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	APIKey         string // API key for authentication
	TrustedProxies []string

	// Catalog
	CatalogPath       string
	CatalogSchemaPath string
	CatalogCacheSize  int           // 0 disables the catalog cache
	CatalogCacheTTL   time.Duration // 0 disables the catalog cache

	// CatalogResyncInterval re-syncs the catalog file while running; 0 disables
	CatalogResyncInterval time.Duration
	MaxRecipeLength       int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", ""),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),

		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", DefaultTrustedProxiesCSV)),

		CatalogPath:       getEnv("CATALOG_PATH", ConfigPathCatalog),
		CatalogSchemaPath: getEnv("CATALOG_SCHEMA_PATH", ConfigPathCatalogSchema),
		CatalogCacheSize:  getEnvAsInt("CATALOG_CACHE_SIZE", DefaultCatalogCacheSize),
		CatalogCacheTTL:   getEnvAsDuration("CATALOG_CACHE_TTL", time.Minute),

		CatalogResyncInterval: getEnvAsDuration("CATALOG_RESYNC_INTERVAL", 0),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	maxRecipe, err := strconv.Atoi(getEnv("MAX_RECIPE_LENGTH", strconv.Itoa(DefaultMaxRecipeLength)))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidMaxRecipeLength, err)
	}
	if maxRecipe <= 0 {
		return nil, fmt.Errorf(ErrMsgMaxRecipeLengthRange, maxRecipe)
	}
	cfg.MaxRecipeLength = maxRecipe

	if cfg.APIKey == "" {
		return nil, errors.New(ErrMsgAPIKeyRequired)
	}

	return cfg, nil
}

// CatalogResyncEnabled reports whether the catalog file is re-synced periodically
func (c *Config) CatalogResyncEnabled() bool {
	return c.CatalogResyncInterval > 0
}

// CatalogCacheEnabled reports whether catalog reads should go through the cache
func (c *Config) CatalogCacheEnabled() bool {
	return c.CatalogCacheSize > 0 && c.CatalogCacheTTL > 0
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection URL with credentials escaped
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
