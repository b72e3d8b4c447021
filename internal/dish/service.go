package dish

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/DishForge_Go/internal/domain"
	"github.com/osse101/DishForge_Go/internal/logger"
	"github.com/osse101/DishForge_Go/internal/metrics"
	"github.com/osse101/DishForge_Go/internal/repository"
)

// Service defines the interface for dish generation
type Service interface {
	GenerateDishes(ctx context.Context, recipe string) ([]domain.Dish, error)
	GetIngredientTypes(ctx context.Context) ([]domain.IngredientType, error)
}

type service struct {
	types       repository.IngredientType
	ingredients repository.Ingredient
}

// NewService creates a new dish service
func NewService(types repository.IngredientType, ingredients repository.Ingredient) Service {
	return &service{
		types:       types,
		ingredients: ingredients,
	}
}

// GenerateDishes returns every distinct dish that can be assembled from the recipe.
// Each recipe rune is an ingredient type code; a dish uses one ingredient per position
// and never the same ingredient twice. Dishes built from the same ingredients in a different
// order are returned once, in the order they were first found.
func (s *service) GenerateDishes(ctx context.Context, recipe string) ([]domain.Dish, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgGenerateDishesCalled, "recipe", recipe)

	start := time.Now()
	dishes, candidates, err := s.generate(ctx, recipe)
	duration := time.Since(start)

	metrics.RecordGeneration(generationOutcome(err), candidates, len(dishes), duration)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgDishesGenerated,
		"recipe", recipe,
		"candidates", candidates,
		"dishes", len(dishes),
		"duration", duration)
	return dishes, nil
}

func (s *service) generate(ctx context.Context, recipe string) ([]domain.Dish, int, error) {
	log := logger.FromContext(ctx)

	if recipe == "" {
		return nil, 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyRecipe)
	}

	types, err := s.types.GetAllIngredientTypes(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf(ErrMsgGetIngredientTypesFailed, err)
	}

	positions := splitRecipe(recipe)
	typesByCode, err := resolveRecipe(positions, types)
	if err != nil {
		log.Warn(LogMsgInvalidRecipeCodes, "recipe", recipe, "error", err)
		return nil, 0, err
	}

	supply, err := buildSupply(ctx, s.ingredients, types, positions)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientIngredients) {
			log.Warn(LogMsgInsufficientIngredients, "recipe", recipe, "error", err)
		}
		return nil, 0, err
	}

	dedup := newDeduplicator(len(positions))
	dishes := make([]domain.Dish, 0)
	candidates := 0
	for candidate := range enumerate(positions, supply, typesByCode) {
		candidates++
		if candidates%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, candidates, fmt.Errorf(ErrMsgGenerationCancelled, err)
			}
		}

		if dish, ok := dedup.accept(candidate); ok {
			dishes = append(dishes, dish)
		}
	}

	return dishes, candidates, nil
}

// GetIngredientTypes returns the ingredient type catalog
func (s *service) GetIngredientTypes(ctx context.Context) ([]domain.IngredientType, error) {
	logger.FromContext(ctx).Debug(LogMsgGetIngredientTypesCalled)

	types, err := s.types.GetAllIngredientTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetIngredientTypesFailed, err)
	}
	return types, nil
}

func generationOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, domain.ErrInvalidRecipeCode):
		return metrics.OutcomeInvalidRecipeCode
	case errors.Is(err, domain.ErrInsufficientIngredients):
		return metrics.OutcomeInsufficientIngredients
	case errors.Is(err, domain.ErrInvalidInput):
		return metrics.OutcomeInvalidInput
	default:
		return metrics.OutcomeError
	}
}
