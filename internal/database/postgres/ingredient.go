package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/osse101/DishForge_Go/internal/domain"
	"github.com/osse101/DishForge_Go/internal/repository"
)

// IngredientRepository implements the catalog repositories for PostgreSQL
type IngredientRepository struct {
	pool *pgxpool.Pool
}

// NewIngredientRepository creates a new IngredientRepository
func NewIngredientRepository(pool *pgxpool.Pool) *IngredientRepository {
	return &IngredientRepository{pool: pool}
}

var (
	_ repository.IngredientType = (*IngredientRepository)(nil)
	_ repository.Ingredient     = (*IngredientRepository)(nil)
	_ repository.Catalog        = (*IngredientRepository)(nil)
)

const (
	queryGetAllIngredientTypes = `
		SELECT ingredient_type_id, code, title
		FROM ingredient_types
		ORDER BY ingredient_type_id`

	queryGetIngredientsByTypeID = `
		SELECT ingredient_id, ingredient_type_id, title, price::text
		FROM ingredients
		WHERE ingredient_type_id = $1
		ORDER BY ingredient_id`

	queryInsertIngredientType = `
		INSERT INTO ingredient_types (code, title)
		VALUES ($1, $2)
		RETURNING ingredient_type_id`

	queryUpdateIngredientType = `
		UPDATE ingredient_types
		SET code = $2, title = $3
		WHERE ingredient_type_id = $1`

	queryInsertIngredient = `
		INSERT INTO ingredients (ingredient_type_id, title, price)
		VALUES ($1, $2, $3::numeric)
		RETURNING ingredient_id`

	queryUpdateIngredient = `
		UPDATE ingredients
		SET title = $2, price = $3::numeric
		WHERE ingredient_id = $1`

	queryGetSyncMetadata = `
		SELECT config_name, last_sync_time, file_hash, file_mod_time
		FROM sync_metadata
		WHERE config_name = $1`

	queryUpsertSyncMetadata = `
		INSERT INTO sync_metadata (config_name, last_sync_time, file_hash, file_mod_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (config_name) DO UPDATE
		SET last_sync_time = EXCLUDED.last_sync_time,
		    file_hash = EXCLUDED.file_hash,
		    file_mod_time = EXCLUDED.file_mod_time`
)

// GetAllIngredientTypes returns every ingredient type ordered by id
func (r *IngredientRepository) GetAllIngredientTypes(ctx context.Context) ([]domain.IngredientType, error) {
	rows, err := r.pool.Query(ctx, queryGetAllIngredientTypes)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToGetIngredientTypes, err)
	}

	types, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.IngredientType, error) {
		var t domain.IngredientType
		err := row.Scan(&t.ID, &t.Code, &t.Title)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToGetIngredientTypes, err)
	}
	return types, nil
}

// GetAllIngredientsByTypeID returns the ingredients of one type ordered by id
func (r *IngredientRepository) GetAllIngredientsByTypeID(ctx context.Context, typeID int) ([]domain.Ingredient, error) {
	rows, err := r.pool.Query(ctx, queryGetIngredientsByTypeID, typeID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToGetIngredients, typeID, err)
	}

	ingredients, err := pgx.CollectRows(rows, scanIngredient)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToGetIngredients, typeID, err)
	}
	return ingredients, nil
}

func scanIngredient(row pgx.CollectableRow) (domain.Ingredient, error) {
	var (
		ing   domain.Ingredient
		price string
	)
	if err := row.Scan(&ing.ID, &ing.TypeID, &ing.Title, &price); err != nil {
		return ing, err
	}

	parsed, err := decimal.NewFromString(price)
	if err != nil {
		return ing, fmt.Errorf(ErrMsgInvalidStoredPrice, price, err)
	}
	ing.Price = parsed
	return ing, nil
}

// InsertIngredientType inserts a type and returns its id
func (r *IngredientRepository) InsertIngredientType(ctx context.Context, ingredientType *domain.IngredientType) (int, error) {
	var id int
	err := r.pool.QueryRow(ctx, queryInsertIngredientType, ingredientType.Code, ingredientType.Title).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgFailedToInsertIngredientType, ingredientType.Code, mapWriteError(err))
	}
	return id, nil
}

// UpdateIngredientType replaces the code and title of an existing type
func (r *IngredientRepository) UpdateIngredientType(ctx context.Context, typeID int, ingredientType *domain.IngredientType) error {
	tag, err := r.pool.Exec(ctx, queryUpdateIngredientType, typeID, ingredientType.Code, ingredientType.Title)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToUpdateIngredientType, typeID, mapWriteError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf(ErrMsgFailedToUpdateIngredientType, typeID, domain.ErrIngredientTypeNotFound)
	}
	return nil
}

// InsertIngredient inserts an ingredient and returns its id
func (r *IngredientRepository) InsertIngredient(ctx context.Context, ingredient *domain.Ingredient) (int, error) {
	var id int
	err := r.pool.QueryRow(ctx, queryInsertIngredient,
		ingredient.TypeID, ingredient.Title, ingredient.Price.String()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgFailedToInsertIngredient, ingredient.Title, mapWriteError(err))
	}
	return id, nil
}

// UpdateIngredient replaces the title and price of an existing ingredient
func (r *IngredientRepository) UpdateIngredient(ctx context.Context, ingredientID int, ingredient *domain.Ingredient) error {
	tag, err := r.pool.Exec(ctx, queryUpdateIngredient, ingredientID, ingredient.Title, ingredient.Price.String())
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToUpdateIngredient, ingredientID, mapWriteError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf(ErrMsgFailedToUpdateIngredient, ingredientID, domain.ErrIngredientNotFound)
	}
	return nil
}

// GetSyncMetadata returns the metadata of the last sync, or nil when the config was never synced
func (r *IngredientRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	var meta domain.SyncMetadata
	err := r.pool.QueryRow(ctx, queryGetSyncMetadata, configName).
		Scan(&meta.ConfigName, &meta.LastSyncTime, &meta.FileHash, &meta.FileModTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf(ErrMsgFailedToGetSyncMetadata, err)
	}
	return &meta, nil
}

// UpsertSyncMetadata records a completed sync
func (r *IngredientRepository) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	_, err := r.pool.Exec(ctx, queryUpsertSyncMetadata,
		metadata.ConfigName, metadata.LastSyncTime, metadata.FileHash, metadata.FileModTime)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToUpsertSyncMetadata, err)
	}
	return nil
}

// mapWriteError turns unique violations into domain.ErrDuplicateCatalogEntry
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateCatalogEntry, pgErr.ConstraintName)
	}
	return err
}
