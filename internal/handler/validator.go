package handler

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()
	_ = v.RegisterValidation("recipe", validateRecipeChars)
	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// ValidateRecipe checks a recipe string against the configured rune limit
func (v *Validator) ValidateRecipe(recipe string, maxLength int) error {
	return v.validate.Var(recipe, fmt.Sprintf("required,max=%d,recipe", maxLength))
}

// FormatValidationError formats validation errors into a user-friendly map.
// defaultField names errors produced by single-value validation, which carry no field name.
func FormatValidationError(err error, defaultField string) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = ValidationMsgBadFormat
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		if field == "" {
			field = defaultField
		}
		switch e.Tag() {
		case "required":
			errs[field] = ValidationMsgRequired
		case "max":
			errs[field] = fmt.Sprintf(ValidationMsgMaxFmt, e.Param())
		case "min":
			errs[field] = fmt.Sprintf(ValidationMsgMinFmt, e.Param())
		case "recipe":
			errs[field] = ValidationMsgRecipe
		case "excludesall":
			errs[field] = ValidationMsgExcludesAll
		default:
			errs[field] = ValidationMsgInvalid
		}
	}

	return errs
}

// validateRecipeChars rejects whitespace and control characters, which can never be type codes
func validateRecipeChars(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if unicode.IsSpace(r) || unicode.IsControl(r) || r == unicode.ReplacementChar {
			return false
		}
	}
	return true
}
