package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// DishIngredient is an ingredient bound to one recipe position
type DishIngredient struct {
	TypeTitle       string          `json:"type"`
	IngredientTitle string          `json:"value"`
	IngredientID    int             `json:"id"`
	Price           decimal.Decimal `json:"price"`
}

// Dish is one feasible assignment of ingredients to a recipe.
// Ingredients keep recipe position order; equality ignores that order.
type Dish struct {
	Ingredients []DishIngredient `json:"products"`
	TotalPrice  decimal.Decimal  `json:"price"`
}

// IngredientIDs returns the ingredient ids sorted ascending
func (d Dish) IngredientIDs() []int {
	ids := make([]int, len(d.Ingredients))
	for i, ing := range d.Ingredients {
		ids[i] = ing.IngredientID
	}
	slices.Sort(ids)
	return ids
}

// SameAs reports whether both dishes are built from the same set of ingredient instances
func (d Dish) SameAs(other Dish) bool {
	return slices.Equal(d.IngredientIDs(), other.IngredientIDs())
}
