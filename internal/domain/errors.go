package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Recipe errors
	ErrMsgInvalidRecipeCode       = "invalid ingredient type codes"
	ErrMsgInsufficientIngredients = "not enough ingredients for type"

	// Catalog errors
	ErrMsgIngredientTypeNotFound = "ingredient type not found"
	ErrMsgIngredientNotFound     = "ingredient not found"
	ErrMsgDuplicateCatalogEntry  = "catalog entry already exists"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context,
// or return the typed errors below which match them via errors.Is.
var (
	ErrInvalidRecipeCode       = errors.New(ErrMsgInvalidRecipeCode)
	ErrInsufficientIngredients = errors.New(ErrMsgInsufficientIngredients)

	ErrIngredientTypeNotFound = errors.New(ErrMsgIngredientTypeNotFound)
	ErrIngredientNotFound     = errors.New(ErrMsgIngredientNotFound)
	ErrDuplicateCatalogEntry  = errors.New(ErrMsgDuplicateCatalogEntry)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// InvalidRecipeCodeError is returned when a recipe references codes missing from the catalog.
// Codes are distinct, in order of first appearance in the recipe.
type InvalidRecipeCodeError struct {
	Codes []string
}

func (e *InvalidRecipeCodeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMsgInvalidRecipeCode, strings.Join(e.Codes, ","))
}

// Is lets errors.Is match ErrInvalidRecipeCode
func (e *InvalidRecipeCodeError) Is(target error) bool {
	return target == ErrInvalidRecipeCode
}

// InsufficientIngredientsError is returned when a recipe needs more ingredients of a type than exist
type InsufficientIngredientsError struct {
	Code      string
	Required  int
	Available int
}

func (e *InsufficientIngredientsError) Error() string {
	return fmt.Sprintf("%s: %s (need %d, have %d)", ErrMsgInsufficientIngredients, e.Code, e.Required, e.Available)
}

// Is lets errors.Is match ErrInsufficientIngredients
func (e *InsufficientIngredientsError) Is(target error) bool {
	return target == ErrInsufficientIngredients
}
