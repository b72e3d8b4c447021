package dish

import (
	"context"
	"fmt"

	"github.com/osse101/DishForge_Go/internal/domain"
	"github.com/osse101/DishForge_Go/internal/repository"
)

// buildSupply loads the ingredients of every catalog type, keyed by code, and checks that each
// type has at least as many ingredients as the recipe has positions of that type. Types are
// checked in catalog order and the first short one is reported.
//
// The check compares counts only. It does not prove an instance-distinct assignment exists,
// which only matters if an ingredient could ever satisfy more than one type.
func buildSupply(
	ctx context.Context,
	repo repository.Ingredient,
	types []domain.IngredientType,
	positions []string,
) (map[string][]domain.Ingredient, error) {
	supply := make(map[string][]domain.Ingredient, len(types))
	for _, ingredientType := range types {
		ingredients, err := repo.GetAllIngredientsByTypeID(ctx, ingredientType.ID)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgGetIngredientsFailedFmt, ingredientType.Code, err)
		}
		supply[ingredientType.Code] = ingredients
	}

	required := countCodes(positions)
	for _, ingredientType := range types {
		code := ingredientType.Code
		if available := len(supply[code]); required[code] > available {
			return nil, &domain.InsufficientIngredientsError{
				Code:      code,
				Required:  required[code],
				Available: available,
			}
		}
	}

	return supply, nil
}

// countCodes counts how many recipe positions require each code
func countCodes(positions []string) map[string]int {
	counts := make(map[string]int, len(positions))
	for _, code := range positions {
		counts[code]++
	}
	return counts
}
