package dish

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/DishForge_Go/internal/domain"
)

// totalPrice sums ingredient prices with exact decimal arithmetic
func totalPrice(ingredients []domain.DishIngredient) decimal.Decimal {
	total := decimal.Zero
	for _, ingredient := range ingredients {
		total = total.Add(ingredient.Price)
	}
	return total
}
