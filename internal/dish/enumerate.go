package dish

import (
	"iter"
	"slices"

	"github.com/osse101/DishForge_Go/internal/domain"
)

// enumerate yields every assignment of one ingredient per recipe position, depth first,
// trying ingredients in supply order. The same ingredient may appear at several positions;
// filtering happens in the consumer. Each yielded slice is owned by the consumer.
func enumerate(
	positions []string,
	supply map[string][]domain.Ingredient,
	typesByCode map[string]domain.IngredientType,
) iter.Seq[[]domain.DishIngredient] {
	return func(yield func([]domain.DishIngredient) bool) {
		var walk func(index int, partial []domain.DishIngredient) bool
		walk = func(index int, partial []domain.DishIngredient) bool {
			if index == len(positions) {
				return yield(slices.Clone(partial))
			}

			code := positions[index]
			typeTitle := typesByCode[code].Title
			for _, ingredient := range supply[code] {
				next := append(partial[:index], domain.DishIngredient{
					TypeTitle:       typeTitle,
					IngredientTitle: ingredient.Title,
					IngredientID:    ingredient.ID,
					Price:           ingredient.Price,
				})
				if !walk(index+1, next) {
					return false
				}
			}
			return true
		}

		walk(0, make([]domain.DishIngredient, 0, len(positions)))
	}
}
