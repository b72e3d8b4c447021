package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDish_SameAs(t *testing.T) {
	a := Dish{Ingredients: []DishIngredient{{IngredientID: 2}, {IngredientID: 1}}}
	b := Dish{Ingredients: []DishIngredient{{IngredientID: 1}, {IngredientID: 2}}}
	c := Dish{Ingredients: []DishIngredient{{IngredientID: 1}, {IngredientID: 3}}}

	assert.True(t, a.SameAs(b))
	assert.False(t, a.SameAs(c))
	assert.Equal(t, []int{1, 2}, a.IngredientIDs())
	// Display order is untouched
	assert.Equal(t, 2, a.Ingredients[0].IngredientID)
}

func TestDish_PriceMarshalsAsExactString(t *testing.T) {
	d := DishIngredient{IngredientID: 1, Price: decimal.RequireFromString("0.10")}
	assert.Equal(t, "0.1", d.Price.String())
	assert.Equal(t, "0.10", d.Price.StringFixed(2))
}
