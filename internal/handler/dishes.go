package handler

import (
	"net/http"

	"github.com/osse101/DishForge_Go/internal/dish"
	"github.com/osse101/DishForge_Go/internal/domain"
	"github.com/osse101/DishForge_Go/internal/logger"
)

// priceScale is the number of decimal places prices are rendered with
const priceScale = 2

// GenerateDishesRequest is the body of POST /api/v1/dishes
type GenerateDishesRequest struct {
	Recipe string `json:"recipe" validate:"required"`
}

// ProductResponse is one ingredient slot of a dish
type ProductResponse struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	ID    int    `json:"id"`
	Price string `json:"price"`
}

// DishResponse is one generated dish
type DishResponse struct {
	Products []ProductResponse `json:"products"`
	Price    string            `json:"price"`
}

// DishesResponse lists every distinct dish for a recipe
type DishesResponse struct {
	Recipe string         `json:"recipe"`
	Count  int            `json:"count"`
	Dishes []DishResponse `json:"dishes"`
}

// IngredientTypesResponse lists the ingredient type catalog
type IngredientTypesResponse struct {
	Types []domain.IngredientType `json:"types"`
}

// DishHandler serves dish generation endpoints
type DishHandler struct {
	service         dish.Service
	maxRecipeLength int
}

// NewDishHandler creates a new DishHandler
func NewDishHandler(service dish.Service, maxRecipeLength int) *DishHandler {
	return &DishHandler{
		service:         service,
		maxRecipeLength: maxRecipeLength,
	}
}

// HandleGenerateDishes generates every distinct dish for a recipe
// @Summary Generate dishes
// @Description Each recipe character is an ingredient type code. Returns every distinct dish with its total price.
// @Tags dishes
// @Accept json
// @Produce json
// @Param request body GenerateDishesRequest true "Recipe"
// @Success 200 {object} DishesResponse
// @Failure 400 {object} ErrorResponse "Invalid recipe or unknown codes"
// @Failure 422 {object} ErrorResponse "Not enough ingredients"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/dishes [post]
func (h *DishHandler) HandleGenerateDishes(w http.ResponseWriter, r *http.Request) {
	var req GenerateDishesRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Generate dishes"); err != nil {
		return
	}
	h.generate(w, r, req.Recipe)
}

// HandleGetDishes is the query-string form of HandleGenerateDishes
// @Summary Generate dishes
// @Description Same as POST /api/v1/dishes with the recipe passed as a query parameter
// @Tags dishes
// @Produce json
// @Param recipe query string true "Recipe"
// @Success 200 {object} DishesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/dishes [get]
func (h *DishHandler) HandleGetDishes(w http.ResponseWriter, r *http.Request) {
	recipe, ok := GetQueryParam(r, w, "recipe")
	if !ok {
		return
	}
	h.generate(w, r, recipe)
}

func (h *DishHandler) generate(w http.ResponseWriter, r *http.Request, recipe string) {
	log := logger.FromContext(r.Context())

	if err := GetValidator().ValidateRecipe(recipe, h.maxRecipeLength); err != nil {
		log.Warn("Invalid recipe", "recipe", recipe, "error", err)
		respondValidationError(w, err, "recipe")
		return
	}

	dishes, err := h.service.GenerateDishes(r.Context(), recipe)
	if err != nil {
		respondServiceError(w, r, ErrMsgGenerateDishesFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, newDishesResponse(recipe, dishes))
}

// HandleGetIngredientTypes lists the ingredient types usable in recipes
// @Summary List ingredient types
// @Description Returns every ingredient type with its recipe code
// @Tags dishes
// @Produce json
// @Success 200 {object} IngredientTypesResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/ingredient-types [get]
func (h *DishHandler) HandleGetIngredientTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.GetIngredientTypes(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgGetIngredientTypesFail, err)
		return
	}
	if types == nil {
		types = []domain.IngredientType{}
	}
	respondJSON(w, http.StatusOK, IngredientTypesResponse{Types: types})
}

func newDishesResponse(recipe string, dishes []domain.Dish) DishesResponse {
	out := DishesResponse{
		Recipe: recipe,
		Count:  len(dishes),
		Dishes: make([]DishResponse, len(dishes)),
	}
	for i, d := range dishes {
		products := make([]ProductResponse, len(d.Ingredients))
		for j, ing := range d.Ingredients {
			products[j] = ProductResponse{
				Type:  ing.TypeTitle,
				Value: ing.IngredientTitle,
				ID:    ing.IngredientID,
				Price: ing.Price.StringFixed(priceScale),
			}
		}
		out.Dishes[i] = DishResponse{
			Products: products,
			Price:    d.TotalPrice.StringFixed(priceScale),
		}
	}
	return out
}
