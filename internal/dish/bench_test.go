package dish

import (
	"context"
	"testing"
)

func BenchmarkGenerateDishes(b *testing.B) {
	catalog := NewMockCatalog().
		AddType(1, "d", "Dough", manyIngredients("dough", 5, "1.10")...).
		AddType(2, "c", "Cheese", manyIngredients("cheese", 6, "0.75")...).
		AddType(3, "i", "Topping", manyIngredients("topping", 8, "0.25")...)
	svc := NewService(catalog, catalog)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.GenerateDishes(ctx, "dccii"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMakeKey(b *testing.B) {
	c := candidate(9, 4, 7, 1, 3, 8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = makeKey(c)
	}
}
