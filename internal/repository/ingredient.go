package repository

import (
	"context"

	"github.com/osse101/DishForge_Go/internal/domain"
)

// IngredientType provides read access to the ingredient type catalog
type IngredientType interface {
	GetAllIngredientTypes(ctx context.Context) ([]domain.IngredientType, error)
}

// Ingredient provides read access to the ingredients of a type
type Ingredient interface {
	GetAllIngredientsByTypeID(ctx context.Context, typeID int) ([]domain.Ingredient, error)
}

// Catalog defines the write side used to sync the ingredient catalog from configuration
type Catalog interface {
	IngredientType
	Ingredient

	InsertIngredientType(ctx context.Context, ingredientType *domain.IngredientType) (int, error)
	UpdateIngredientType(ctx context.Context, typeID int, ingredientType *domain.IngredientType) error
	InsertIngredient(ctx context.Context, ingredient *domain.Ingredient) (int, error)
	UpdateIngredient(ctx context.Context, ingredientID int, ingredient *domain.Ingredient) error

	// Sync metadata operations
	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)
	UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error
}
