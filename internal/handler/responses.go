package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/DishForge_Go/internal/domain"
	"github.com/osse101/DishForge_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
// Codes lists unknown ingredient type codes; Code names the type that ran short.
type ErrorResponse struct {
	Error     string   `json:"error"`
	Codes     []string `json:"codes,omitempty"`
	Code      string   `json:"code,omitempty"`
	Required  int      `json:"required,omitempty"`
	Available *int     `json:"available,omitempty"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the mapped status and body
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, body := mapServiceError(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}
	respondJSON(w, status, body)
}

// mapServiceError maps domain errors to HTTP status codes and user-facing bodies
func mapServiceError(err error) (int, ErrorResponse) {
	var codeErr *domain.InvalidRecipeCodeError
	if errors.As(err, &codeErr) {
		return http.StatusBadRequest, ErrorResponse{Error: ErrMsgUnknownIngredientCodes, Codes: codeErr.Codes}
	}

	var supplyErr *domain.InsufficientIngredientsError
	if errors.As(err, &supplyErr) {
		available := supplyErr.Available
		return http.StatusUnprocessableEntity, ErrorResponse{
			Error:     ErrMsgNotEnoughIngredients,
			Code:      supplyErr.Code,
			Required:  supplyErr.Required,
			Available: &available,
		}
	}

	switch {
	case errors.Is(err, domain.ErrInvalidRecipeCode):
		return http.StatusBadRequest, ErrorResponse{Error: ErrMsgUnknownIngredientCodes}
	case errors.Is(err, domain.ErrInsufficientIngredients):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: ErrMsgNotEnoughIngredients}
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrorResponse{Error: ErrMsgInvalidInputError}
	case errors.Is(err, domain.ErrIngredientTypeNotFound):
		return http.StatusNotFound, ErrorResponse{Error: ErrMsgIngredientTypeNotFoundErr}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrorResponse{Error: ErrMsgRequestCancelledError}
	}

	return http.StatusInternalServerError, ErrorResponse{Error: ErrMsgGenericServerError}
}
