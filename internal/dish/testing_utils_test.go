package dish

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/osse101/DishForge_Go/internal/domain"
)

// MockCatalog is an in-memory catalog implementing repository.IngredientType and repository.Ingredient
type MockCatalog struct {
	mu          sync.Mutex
	types       []domain.IngredientType
	ingredients map[int][]domain.Ingredient

	// Error injection for testing
	typesErr       error
	ingredientsErr error

	// Call tracking
	typeCalls       int
	ingredientCalls map[int]int
}

func NewMockCatalog() *MockCatalog {
	return &MockCatalog{
		ingredients:     make(map[int][]domain.Ingredient),
		ingredientCalls: make(map[int]int),
	}
}

// AddType registers a type and its ingredients given as title/price pairs.
// Ingredient ids are typeID*100 + position (1-based) so they stay stable across tests.
func (m *MockCatalog) AddType(id int, code, title string, ingredients ...ingredientDef) *MockCatalog {
	m.types = append(m.types, domain.IngredientType{ID: id, Code: code, Title: title})
	for i, def := range ingredients {
		m.ingredients[id] = append(m.ingredients[id], domain.Ingredient{
			ID:     id*100 + i + 1,
			TypeID: id,
			Title:  def.title,
			Price:  decimal.RequireFromString(def.price),
		})
	}
	return m
}

func (m *MockCatalog) GetAllIngredientTypes(ctx context.Context) ([]domain.IngredientType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.typeCalls++
	if m.typesErr != nil {
		return nil, m.typesErr
	}
	return append([]domain.IngredientType(nil), m.types...), nil
}

func (m *MockCatalog) GetAllIngredientsByTypeID(ctx context.Context, typeID int) ([]domain.Ingredient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ingredientCalls[typeID]++
	if m.ingredientsErr != nil {
		return nil, m.ingredientsErr
	}
	return append([]domain.Ingredient(nil), m.ingredients[typeID]...), nil
}

type ingredientDef struct {
	title string
	price string
}

func ing(title, price string) ingredientDef {
	return ingredientDef{title: title, price: price}
}

// manyIngredients returns n ingredients titled prefix1..prefixN priced at the given amount
func manyIngredients(prefix string, n int, price string) []ingredientDef {
	defs := make([]ingredientDef, n)
	for i := range defs {
		defs[i] = ing(fmt.Sprintf("%s%d", prefix, i+1), price)
	}
	return defs
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// dishIDs returns the ingredient ids of a dish in position order
func dishIDs(d domain.Dish) []int {
	ids := make([]int, len(d.Ingredients))
	for i, ingredient := range d.Ingredients {
		ids[i] = ingredient.IngredientID
	}
	return ids
}
