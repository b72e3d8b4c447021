package dish

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DishForge_Go/internal/domain"
)

type expectedDish struct {
	ids   []int
	total string
}

func assertDishes(t *testing.T, expected []expectedDish, dishes []domain.Dish) {
	t.Helper()
	require.Len(t, dishes, len(expected))
	for i, want := range expected {
		assert.Equal(t, want.ids, dishIDs(dishes[i]), "dish %d ingredients", i)
		assert.True(t, dishes[i].TotalPrice.Equal(dec(want.total)), "dish %d total: got %s want %s", i, dishes[i].TotalPrice, want.total)
	}
}

func TestGenerateDishes_Scenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("A: single position lists every ingredient", func(t *testing.T) {
		catalog := NewMockCatalog().AddType(1, "A", "Bread", ing("a1", "1.00"), ing("a2", "2.00"))
		svc := NewService(catalog, catalog)

		dishes, err := svc.GenerateDishes(ctx, "A")
		require.NoError(t, err)
		assertDishes(t, []expectedDish{
			{ids: []int{101}, total: "1.00"},
			{ids: []int{102}, total: "2.00"},
		}, dishes)
	})

	t.Run("B: two types", func(t *testing.T) {
		catalog := NewMockCatalog().
			AddType(1, "A", "Bread", ing("a1", "1"), ing("a2", "2")).
			AddType(2, "B", "Cheese", ing("b1", "3"))
		svc := NewService(catalog, catalog)

		dishes, err := svc.GenerateDishes(ctx, "AB")
		require.NoError(t, err)
		assertDishes(t, []expectedDish{
			{ids: []int{101, 201}, total: "4"},
			{ids: []int{102, 201}, total: "5"},
		}, dishes)
	})

	t.Run("C: not enough ingredients", func(t *testing.T) {
		catalog := NewMockCatalog().AddType(1, "A", "Bread", ing("a1", "1"))
		svc := NewService(catalog, catalog)

		dishes, err := svc.GenerateDishes(ctx, "AA")
		assert.Nil(t, dishes)
		require.Error(t, err)

		var supplyErr *domain.InsufficientIngredientsError
		require.True(t, errors.As(err, &supplyErr))
		assert.Equal(t, "A", supplyErr.Code)
		assert.Equal(t, 2, supplyErr.Required)
		assert.Equal(t, 1, supplyErr.Available)
	})

	t.Run("C: several short types report the first in catalog order", func(t *testing.T) {
		catalog := NewMockCatalog().
			AddType(1, "A", "Bread", ing("a1", "1")).
			AddType(2, "B", "Cheese", ing("b1", "1"))
		svc := NewService(catalog, catalog)

		_, err := svc.GenerateDishes(ctx, "BBAA")

		var supplyErr *domain.InsufficientIngredientsError
		require.True(t, errors.As(err, &supplyErr))
		assert.Equal(t, "A", supplyErr.Code)
	})

	t.Run("D: unknown code", func(t *testing.T) {
		catalog := NewMockCatalog().
			AddType(1, "A", "Bread", ing("a1", "1")).
			AddType(2, "B", "Cheese", ing("b1", "1"))
		svc := NewService(catalog, catalog)

		dishes, err := svc.GenerateDishes(ctx, "AC")
		assert.Nil(t, dishes)

		var codeErr *domain.InvalidRecipeCodeError
		require.True(t, errors.As(err, &codeErr))
		assert.Equal(t, []string{"C"}, codeErr.Codes)
		assert.Empty(t, catalog.ingredientCalls, "no ingredients are loaded for an invalid recipe")
	})

	t.Run("E: permutations and reused instances collapse", func(t *testing.T) {
		catalog := NewMockCatalog().AddType(1, "A", "Bread", ing("a1", "1"), ing("a2", "1"))
		svc := NewService(catalog, catalog)

		dishes, err := svc.GenerateDishes(ctx, "AA")
		require.NoError(t, err)
		assertDishes(t, []expectedDish{
			{ids: []int{101, 102}, total: "2"},
		}, dishes)
	})
}

func TestGenerateDishes_Properties(t *testing.T) {
	catalog := NewMockCatalog().
		AddType(1, "d", "Dough", ing("thin", "1.10"), ing("thick", "1.30"), ing("gluten free", "2.05")).
		AddType(2, "c", "Cheese", ing("mozzarella", "0.70"), ing("parmesan", "0.95"), ing("gouda", "0.60"), ing("feta", "0.80")).
		AddType(3, "i", "Topping", ing("tomato", "0.15"), ing("ham", "0.45"), ing("olive", "0.33"), ing("basil", "0.10"), ing("mushroom", "0.27"))
	svc := NewService(catalog, catalog)

	recipe := "dcciii"
	positions := splitRecipe(recipe)
	titles := map[string]string{"d": "Dough", "c": "Cheese", "i": "Topping"}

	dishes, err := svc.GenerateDishes(context.Background(), recipe)
	require.NoError(t, err)

	// 3 doughs * C(4,2) cheeses * C(5,3) toppings
	assert.Len(t, dishes, 3*6*10)

	seen := make(map[string]bool)
	for _, d := range dishes {
		require.Len(t, d.Ingredients, len(positions))

		ids := make(map[int]bool)
		sum := dec("0")
		for pos, ingredient := range d.Ingredients {
			assert.Equal(t, titles[positions[pos]], ingredient.TypeTitle, "position %d type", pos)
			assert.False(t, ids[ingredient.IngredientID], "ingredient %d reused", ingredient.IngredientID)
			ids[ingredient.IngredientID] = true
			sum = sum.Add(ingredient.Price)
		}
		assert.True(t, sum.Equal(d.TotalPrice))

		key, _ := makeKey(d.Ingredients)
		assert.False(t, seen[string(key)], "duplicate dish %v", dishIDs(d))
		seen[string(key)] = true
	}
}

func TestGenerateDishes_Idempotent(t *testing.T) {
	catalog := NewMockCatalog().
		AddType(1, "A", "Bread", manyIngredients("a", 4, "0.10")...).
		AddType(2, "B", "Cheese", manyIngredients("b", 3, "0.20")...)
	svc := NewService(catalog, catalog)

	first, err := svc.GenerateDishes(context.Background(), "ABA")
	require.NoError(t, err)
	second, err := svc.GenerateDishes(context.Background(), "ABA")
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, dishIDs(first[i]), dishIDs(second[i]))
		assert.Equal(t, first[i].TotalPrice.String(), second[i].TotalPrice.String())
	}
}

func TestGenerateDishes_EmptyResultIsNotNil(t *testing.T) {
	catalog := NewMockCatalog().AddType(1, "A", "Bread", ing("a1", "1"))
	svc := NewService(catalog, catalog)

	dishes, err := svc.GenerateDishes(context.Background(), "A")
	require.NoError(t, err)
	assert.NotNil(t, dishes)
	assert.Len(t, dishes, 1)
}

func TestGenerateDishes_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("empty recipe", func(t *testing.T) {
		catalog := NewMockCatalog().AddType(1, "A", "Bread", ing("a1", "1"))
		_, err := NewService(catalog, catalog).GenerateDishes(ctx, "")
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		assert.Equal(t, 0, catalog.typeCalls)
	})

	t.Run("catalog failure", func(t *testing.T) {
		catalog := NewMockCatalog()
		catalog.typesErr = errors.New("db down")
		_, err := NewService(catalog, catalog).GenerateDishes(ctx, "A")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get ingredient types")
		assert.False(t, errors.Is(err, domain.ErrInvalidRecipeCode))
	})

	t.Run("ingredient failure", func(t *testing.T) {
		catalog := NewMockCatalog().AddType(1, "A", "Bread", ing("a1", "1"))
		catalog.ingredientsErr = errors.New("db down")
		_, err := NewService(catalog, catalog).GenerateDishes(ctx, "A")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get ingredients")
	})

	t.Run("cancelled context stops enumeration", func(t *testing.T) {
		catalog := NewMockCatalog().AddType(1, "A", "Bread", manyIngredients("a", 40, "1")...)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := NewService(catalog, catalog).GenerateDishes(cctx, "AA")
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestGetIngredientTypes(t *testing.T) {
	catalog := NewMockCatalog().
		AddType(1, "A", "Bread").
		AddType(2, "B", "Cheese")

	types, err := NewService(catalog, catalog).GetIngredientTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.IngredientType{
		{ID: 1, Code: "A", Title: "Bread"},
		{ID: 2, Code: "B", Title: "Cheese"},
	}, types)
}
