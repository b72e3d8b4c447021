package dish

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("serves repeated reads from cache", func(t *testing.T) {
		catalog := NewMockCatalog().AddType(1, "A", "Bread", ing("a1", "1"))
		cached := NewCachedCatalog(catalog, catalog, 8, time.Minute)

		for range 3 {
			types, err := cached.GetAllIngredientTypes(ctx)
			require.NoError(t, err)
			require.Len(t, types, 1)

			ingredients, err := cached.GetAllIngredientsByTypeID(ctx, 1)
			require.NoError(t, err)
			require.Len(t, ingredients, 1)
		}

		assert.Equal(t, 1, catalog.typeCalls)
		assert.Equal(t, 1, catalog.ingredientCalls[1])

		stats := cached.Stats()
		assert.Equal(t, int64(4), stats.Hits)
		assert.Equal(t, int64(2), stats.Misses)
		assert.Equal(t, 2, stats.Entries)
	})

	t.Run("callers cannot corrupt cached entries", func(t *testing.T) {
		catalog := NewMockCatalog().AddType(1, "A", "Bread", ing("a1", "1"))
		cached := NewCachedCatalog(catalog, catalog, 8, time.Minute)

		first, err := cached.GetAllIngredientsByTypeID(ctx, 1)
		require.NoError(t, err)
		first[0].Title = "mutated"

		second, err := cached.GetAllIngredientsByTypeID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "a1", second[0].Title)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		catalog := NewMockCatalog().AddType(1, "A", "Bread", ing("a1", "1"))
		catalog.typesErr = errors.New("db down")
		cached := NewCachedCatalog(catalog, catalog, 8, time.Minute)

		_, err := cached.GetAllIngredientTypes(ctx)
		require.Error(t, err)

		catalog.typesErr = nil
		types, err := cached.GetAllIngredientTypes(ctx)
		require.NoError(t, err)
		assert.Len(t, types, 1)
		assert.Equal(t, 2, catalog.typeCalls)
	})

	t.Run("purge forces reload", func(t *testing.T) {
		catalog := NewMockCatalog().AddType(1, "A", "Bread", ing("a1", "1"))
		cached := NewCachedCatalog(catalog, catalog, 8, time.Minute)

		_, _ = cached.GetAllIngredientTypes(ctx)
		cached.Purge(ctx)
		_, _ = cached.GetAllIngredientTypes(ctx)

		assert.Equal(t, 2, catalog.typeCalls)
	})

	t.Run("service generates identical dishes through the cache", func(t *testing.T) {
		catalog := NewMockCatalog().
			AddType(1, "A", "Bread", ing("a1", "1"), ing("a2", "2")).
			AddType(2, "B", "Cheese", ing("b1", "3"))
		cached := NewCachedCatalog(catalog, catalog, 8, time.Minute)
		svc := NewService(cached, cached)

		first, err := svc.GenerateDishes(ctx, "AB")
		require.NoError(t, err)
		second, err := svc.GenerateDishes(ctx, "AB")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, catalog.typeCalls)
	})
}
