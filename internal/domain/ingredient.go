package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// IngredientType is a category of ingredient (e.g. bread, filling) addressed in recipes by its code
type IngredientType struct {
	ID    int    `json:"id" db:"ingredient_type_id"`
	Code  string `json:"code" db:"code"`   // Single rune used in recipe strings
	Title string `json:"title" db:"title"` // Display name
}

// Ingredient is a concrete, priced instance belonging to exactly one IngredientType
type Ingredient struct {
	ID     int             `json:"id" db:"ingredient_id"`
	TypeID int             `json:"type_id" db:"ingredient_type_id"`
	Title  string          `json:"title" db:"title"`
	Price  decimal.Decimal `json:"price" db:"price"`
}

// SyncMetadata tracks the last catalog file synced into the database
type SyncMetadata struct {
	ConfigName   string    `json:"config_name"`
	LastSyncTime time.Time `json:"last_sync_time"`
	FileHash     string    `json:"file_hash"`
	FileModTime  time.Time `json:"file_mod_time"`
}
