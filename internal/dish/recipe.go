package dish

import (
	"unicode/utf8"

	"github.com/osse101/DishForge_Go/internal/domain"
)

// splitRecipe decomposes a recipe into its position codes, one per rune
func splitRecipe(recipe string) []string {
	positions := make([]string, 0, utf8.RuneCountInString(recipe))
	for _, r := range recipe {
		positions = append(positions, string(r))
	}
	return positions
}

// resolveRecipe maps every catalog code to its type and rejects positions whose code is unknown.
// Unknown codes are reported once each, in order of first appearance.
func resolveRecipe(positions []string, types []domain.IngredientType) (map[string]domain.IngredientType, error) {
	typesByCode := make(map[string]domain.IngredientType, len(types))
	for _, t := range types {
		typesByCode[t.Code] = t
	}

	var unknown []string
	reported := make(map[string]bool)
	for _, code := range positions {
		if _, ok := typesByCode[code]; ok || reported[code] {
			continue
		}
		reported[code] = true
		unknown = append(unknown, code)
	}

	if len(unknown) > 0 {
		return nil, &domain.InvalidRecipeCodeError{Codes: unknown}
	}
	return typesByCode, nil
}
