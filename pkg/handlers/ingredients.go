package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/dermasafe-inc/dermasafe-engine/pkg/catalog"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/models"
)

// ingredientsResponse is the GET /api/ingredients payload.
type ingredientsResponse struct {
	Count       int                       `json:"count"`
	Ingredients []models.IngredientRecord `json:"ingredients"`
}

// IngredientsHandler serves the read-only catalog listing.
type IngredientsHandler struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewIngredientsHandler creates a new IngredientsHandler.
func NewIngredientsHandler(c *catalog.Catalog, logger *zap.Logger) *IngredientsHandler {
	return &IngredientsHandler{catalog: c, logger: logger}
}

// RegisterRoutes registers the ingredients handler's routes on the given mux.
func (h *IngredientsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/ingredients", h.List)
}

// List handles GET /api/ingredients requests. Records come back in catalog
// declaration order, optionally filtered by exact category and/or
// risk_level query parameters.
func (h *IngredientsHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	riskLevel := r.URL.Query().Get("risk_level")

	records := h.catalog.List(category, riskLevel)

	response := ingredientsResponse{
		Count:       len(records),
		Ingredients: records,
	}
	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode ingredients response", zap.Error(err))
	}
}
