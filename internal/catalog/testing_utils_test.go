package catalog

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/DishForge_Go/internal/domain"
)

const schemaPath = "configs/schemas/catalog.schema.json"

// MemoryCatalog is an in-memory repository.Catalog
type MemoryCatalog struct {
	mu          sync.Mutex
	types       []domain.IngredientType
	ingredients []domain.Ingredient
	meta        map[string]domain.SyncMetadata
	nextID      int

	// Error injection for testing
	insertTypeErr error
	metaErr       error

	// Call tracking
	writes int
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{meta: make(map[string]domain.SyncMetadata)}
}

func (m *MemoryCatalog) GetAllIngredientTypes(ctx context.Context) ([]domain.IngredientType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.types), nil
}

func (m *MemoryCatalog) GetAllIngredientsByTypeID(ctx context.Context, typeID int) ([]domain.Ingredient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Ingredient
	for _, ing := range m.ingredients {
		if ing.TypeID == typeID {
			out = append(out, ing)
		}
	}
	return out, nil
}

func (m *MemoryCatalog) InsertIngredientType(ctx context.Context, t *domain.IngredientType) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertTypeErr != nil {
		return 0, m.insertTypeErr
	}
	m.writes++
	m.nextID++
	m.types = append(m.types, domain.IngredientType{ID: m.nextID, Code: t.Code, Title: t.Title})
	return m.nextID, nil
}

func (m *MemoryCatalog) UpdateIngredientType(ctx context.Context, typeID int, t *domain.IngredientType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	for i := range m.types {
		if m.types[i].ID == typeID {
			m.types[i].Code, m.types[i].Title = t.Code, t.Title
			return nil
		}
	}
	return domain.ErrIngredientTypeNotFound
}

func (m *MemoryCatalog) InsertIngredient(ctx context.Context, ing *domain.Ingredient) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	m.nextID++
	m.ingredients = append(m.ingredients, domain.Ingredient{ID: m.nextID, TypeID: ing.TypeID, Title: ing.Title, Price: ing.Price})
	return m.nextID, nil
}

func (m *MemoryCatalog) UpdateIngredient(ctx context.Context, ingredientID int, ing *domain.Ingredient) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	for i := range m.ingredients {
		if m.ingredients[i].ID == ingredientID {
			m.ingredients[i].Title, m.ingredients[i].Price = ing.Title, ing.Price
			return nil
		}
	}
	return domain.ErrIngredientNotFound
}

func (m *MemoryCatalog) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.metaErr != nil {
		return nil, m.metaErr
	}
	meta, ok := m.meta[configName]
	if !ok {
		return nil, nil
	}
	return &meta, nil
}

func (m *MemoryCatalog) UpsertSyncMetadata(ctx context.Context, meta *domain.SyncMetadata) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.meta[meta.ConfigName] = *meta
	return nil
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const sampleCatalog = `{
	"version": "1.0",
	"description": "Test catalog",
	"ingredient_types": [
		{"code": "A", "title": "Bread", "ingredients": [
			{"title": "rye", "price": "1.00"},
			{"title": "wheat", "price": "2.00"}
		]},
		{"code": "B", "title": "Cheese", "ingredients": [
			{"title": "gouda", "price": "3.00"}
		]}
	]
}`
