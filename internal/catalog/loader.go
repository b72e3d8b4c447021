package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/osse101/DishForge_Go/internal/domain"
	"github.com/osse101/DishForge_Go/internal/logger"
	"github.com/osse101/DishForge_Go/internal/repository"
	"github.com/osse101/DishForge_Go/internal/validation"
)

// Sentinel errors for the catalog loader
var (
	ErrInvalidConfig  = errors.New("invalid catalog configuration")
	ErrDuplicateCode  = errors.New("duplicate ingredient type code")
	ErrDuplicateTitle = errors.New("duplicate ingredient title")
)

// Config is the JSON catalog file
type Config struct {
	Version         string    `json:"version"`
	Description     string    `json:"description"`
	IngredientTypes []TypeDef `json:"ingredient_types"`
}

// TypeDef is one ingredient type with its ingredients
type TypeDef struct {
	Code        string          `json:"code"`
	Title       string          `json:"title"`
	Ingredients []IngredientDef `json:"ingredients"`
}

// IngredientDef is one priced ingredient. Prices are strings so they stay exact.
type IngredientDef struct {
	Title string `json:"title"`
	Price string `json:"price"`
}

// Loader handles loading, validating and syncing the ingredient catalog
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	SyncToDatabase(ctx context.Context, config *Config, repo repository.Catalog, configPath string) (*SyncResult, error)
}

// SyncResult counts what a sync changed
type SyncResult struct {
	Unchanged           bool
	TypesInserted       int
	TypesUpdated        int
	TypesSkipped        int
	IngredientsInserted int
	IngredientsUpdated  int
	IngredientsSkipped  int
}

// Changed reports whether the sync wrote anything
func (r *SyncResult) Changed() bool {
	return r.TypesInserted+r.TypesUpdated+r.IngredientsInserted+r.IngredientsUpdated > 0
}

type catalogLoader struct {
	schemaPath      string
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader validating catalog files against schemaPath
func NewLoader(schemaPath string) Loader {
	return &catalogLoader{
		schemaPath:      schemaPath,
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads a catalog file and checks it against the JSON schema
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, l.schemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks rules the schema cannot express
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.IngredientTypes) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoTypesDefined)
	}

	codes := make(map[string]bool, len(config.IngredientTypes))
	for i := range config.IngredientTypes {
		if err := validateTypeDef(i, &config.IngredientTypes[i], codes); err != nil {
			return err
		}
	}
	return nil
}

func validateTypeDef(index int, def *TypeDef, codes map[string]bool) error {
	if def.Code == "" {
		return fmt.Errorf(ErrFmtTypeEmptyCode, ErrInvalidConfig, index)
	}
	if utf8.RuneCountInString(def.Code) != 1 {
		return fmt.Errorf(ErrFmtTypeLongCode, ErrInvalidConfig, def.Code)
	}
	if r, _ := utf8.DecodeRuneInString(def.Code); unicode.IsSpace(r) || unicode.IsControl(r) {
		return fmt.Errorf(ErrFmtTypeBlankCode, ErrInvalidConfig, def.Code)
	}
	if codes[def.Code] {
		return fmt.Errorf(ErrFmtDuplicateCode, ErrDuplicateCode, def.Code)
	}
	codes[def.Code] = true

	if strings.TrimSpace(def.Title) == "" {
		return fmt.Errorf(ErrFmtTypeEmptyTitle, ErrInvalidConfig, def.Code)
	}

	titles := make(map[string]bool, len(def.Ingredients))
	for i, ing := range def.Ingredients {
		if strings.TrimSpace(ing.Title) == "" {
			return fmt.Errorf(ErrFmtIngEmptyTitle, ErrInvalidConfig, i, def.Code)
		}
		if titles[ing.Title] {
			return fmt.Errorf(ErrFmtDuplicateTitle, ErrDuplicateTitle, ing.Title, def.Code)
		}
		titles[ing.Title] = true

		price, err := decimal.NewFromString(ing.Price)
		if err != nil {
			return fmt.Errorf(ErrFmtIngInvalidPrice, ErrInvalidConfig, ing.Title, def.Code, ing.Price)
		}
		if price.IsNegative() {
			return fmt.Errorf(ErrFmtIngNegPrice, ErrInvalidConfig, ing.Title, def.Code)
		}
	}
	return nil
}

// SyncToDatabase makes the database match the catalog file without deleting rows.
// It is a no-op when the file hash and modification time match the last sync.
func (l *catalogLoader) SyncToDatabase(ctx context.Context, config *Config, repo repository.Catalog, configPath string) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	fp, err := fingerprintFile(configPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCheckFileChangeFailed, err)
	}

	changed, err := hasFileChanged(ctx, repo, fp)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCheckFileChangeFailed, err)
	}
	if !changed {
		log.Info(LogMsgConfigUnchanged, "path", configPath)
		return &SyncResult{Unchanged: true}, nil
	}

	existingTypes, err := repo.GetAllIngredientTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetExistingTypesFailed, err)
	}
	typesByCode := make(map[string]domain.IngredientType, len(existingTypes))
	for _, t := range existingTypes {
		typesByCode[t.Code] = t
	}

	result := &SyncResult{}
	for _, def := range config.IngredientTypes {
		typeID, err := syncType(ctx, repo, def, typesByCode, result)
		if err != nil {
			return nil, err
		}
		if err := syncIngredients(ctx, repo, typeID, def, result); err != nil {
			return nil, err
		}
	}

	if err := repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName:   ConfigFileName,
		LastSyncTime: time.Now(),
		FileHash:     fp.hash,
		FileModTime:  fp.modTime,
	}); err != nil {
		log.Warn(LogMsgUpdateMetadataFailed, "error", err)
	}

	log.Info(LogMsgSyncCompleted,
		"types_inserted", result.TypesInserted,
		"types_updated", result.TypesUpdated,
		"types_skipped", result.TypesSkipped,
		"ingredients_inserted", result.IngredientsInserted,
		"ingredients_updated", result.IngredientsUpdated,
		"ingredients_skipped", result.IngredientsSkipped)

	return result, nil
}

func syncType(ctx context.Context, repo repository.Catalog, def TypeDef, typesByCode map[string]domain.IngredientType, result *SyncResult) (int, error) {
	log := logger.FromContext(ctx)

	existing, ok := typesByCode[def.Code]
	if !ok {
		id, err := repo.InsertIngredientType(ctx, &domain.IngredientType{Code: def.Code, Title: def.Title})
		if err != nil {
			return 0, fmt.Errorf(ErrMsgInsertTypeFailed, def.Code, err)
		}
		result.TypesInserted++
		log.Info(LogMsgInsertedType, "code", def.Code, "id", id)
		return id, nil
	}

	if existing.Title == def.Title {
		result.TypesSkipped++
		return existing.ID, nil
	}

	if err := repo.UpdateIngredientType(ctx, existing.ID, &domain.IngredientType{Code: def.Code, Title: def.Title}); err != nil {
		return 0, fmt.Errorf(ErrMsgUpdateTypeFailed, def.Code, err)
	}
	result.TypesUpdated++
	log.Info(LogMsgUpdatedType, "code", def.Code)
	return existing.ID, nil
}

func syncIngredients(ctx context.Context, repo repository.Catalog, typeID int, def TypeDef, result *SyncResult) error {
	log := logger.FromContext(ctx)

	existing, err := repo.GetAllIngredientsByTypeID(ctx, typeID)
	if err != nil {
		return fmt.Errorf(ErrMsgGetExistingIngsFailed, def.Code, err)
	}
	byTitle := make(map[string]domain.Ingredient, len(existing))
	for _, ing := range existing {
		byTitle[ing.Title] = ing
	}

	for _, ingDef := range def.Ingredients {
		// Validate already checked the price
		price := decimal.RequireFromString(ingDef.Price)

		current, ok := byTitle[ingDef.Title]
		switch {
		case !ok:
			id, err := repo.InsertIngredient(ctx, &domain.Ingredient{TypeID: typeID, Title: ingDef.Title, Price: price})
			if err != nil {
				return fmt.Errorf(ErrMsgInsertIngredientFailed, ingDef.Title, err)
			}
			result.IngredientsInserted++
			log.Info(LogMsgInsertedIngredient, "code", def.Code, "title", ingDef.Title, "id", id)
		case !current.Price.Equal(price):
			if err := repo.UpdateIngredient(ctx, current.ID, &domain.Ingredient{TypeID: typeID, Title: ingDef.Title, Price: price}); err != nil {
				return fmt.Errorf(ErrMsgUpdateIngredientFailed, ingDef.Title, err)
			}
			result.IngredientsUpdated++
			log.Info(LogMsgUpdatedIngredient, "code", def.Code, "title", ingDef.Title, "price", price.StringFixed(2))
		default:
			result.IngredientsSkipped++
		}
	}
	return nil
}

type fileFingerprint struct {
	hash    string
	modTime time.Time
}

// fingerprintFile hashes the file and truncates its mtime to what Postgres timestamps can hold
func fingerprintFile(path string) (fileFingerprint, error) {
	info, err := os.Stat(path)
	if err != nil {
		return fileFingerprint{}, fmt.Errorf(ErrMsgStatConfigFileFailed, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fileFingerprint{}, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	sum := sha256.Sum256(data)
	return fileFingerprint{
		hash:    hex.EncodeToString(sum[:]),
		modTime: info.ModTime().UTC().Truncate(time.Microsecond),
	}, nil
}

func hasFileChanged(ctx context.Context, repo repository.Catalog, fp fileFingerprint) (bool, error) {
	meta, err := repo.GetSyncMetadata(ctx, ConfigFileName)
	if err != nil {
		return false, fmt.Errorf(ErrMsgGetSyncMetadataFailed, err)
	}
	if meta == nil {
		return true, nil
	}
	return meta.FileHash != fp.hash || !meta.FileModTime.Equal(fp.modTime), nil
}

// LoadAndSync loads, validates and syncs the catalog at path
func LoadAndSync(ctx context.Context, loader Loader, repo repository.Catalog, path string) (*SyncResult, error) {
	config, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCatalogLoadFailedOnLaunch, err)
	}
	if err := loader.Validate(config); err != nil {
		return nil, fmt.Errorf(ErrMsgCatalogValidationFailed, err)
	}
	result, err := loader.SyncToDatabase(ctx, config, repo, path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCatalogSyncFailedOnLoad, err)
	}
	return result, nil
}
