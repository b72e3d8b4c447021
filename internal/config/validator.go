package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout version this build understands
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists the variables the API server refuses to start without
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
}

// DiscordRequiredEnvVars lists the variables the Discord bot needs
var DiscordRequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"API_KEY",
	"DISCORD_TOKEN",
	"DISCORD_APP_ID",
	"API_URL",
}

// ValidateEnv checks the schema version and the API server's required variables
func ValidateEnv() error {
	return validateEnv(RequiredEnvVars)
}

// ValidateDiscordEnv checks the schema version and the Discord bot's required variables
func ValidateDiscordEnv() error {
	return validateEnv(DiscordRequiredEnvVars)
}

func validateEnv(required []string) error {
	switch version := os.Getenv("ENV_SCHEMA_VERSION"); version {
	case "":
		return fmt.Errorf(ErrMsgSchemaVersionMissing, ExpectedEnvSchemaVersion)
	case ExpectedEnvSchemaVersion:
	default:
		return fmt.Errorf(ErrMsgSchemaVersionMismatch, ExpectedEnvSchemaVersion, version)
	}

	var missing []string
	for _, key := range required {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf(ErrMsgMissingRequiredVars, strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and then reports settings that work but are
// probably not intended
func ValidateEnvWithWarnings(cfg *Config) ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	if cfg.DBPassword == ExampleDBPassword {
		warnings = append(warnings, WarnMsgExampleDBPassword)
	}
	switch {
	case cfg.APIKey == ExampleAPIKey:
		warnings = append(warnings, WarnMsgExampleAPIKey)
	case len(cfg.APIKey) < MinAPIKeyLength:
		warnings = append(warnings, fmt.Sprintf(WarnMsgShortAPIKey, MinAPIKeyLength))
	}
	if isProduction(cfg.Environment) && !strings.EqualFold(cfg.LogFormat, "json") {
		warnings = append(warnings, WarnMsgTextLogsInProd)
	}
	if !cfg.CatalogCacheEnabled() {
		warnings = append(warnings, WarnMsgCatalogCacheOff)
	}
	return warnings, nil
}

func isProduction(environment string) bool {
	switch strings.ToLower(environment) {
	case "prod", "production":
		return true
	default:
		return false
	}
}
