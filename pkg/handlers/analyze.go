package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/dermasafe-inc/dermasafe-engine/pkg/llm"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/models"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/services"
)

// analyzeRequest is the POST /api/analyze payload.
type analyzeRequest struct {
	SkinProfile *models.SkinProfile `json:"skin_profile"`
	Product     *productPayload     `json:"product"`
}

// productPayload identifies the product under analysis. Ingredients may be
// omitted when a product name is supplied; the provider predicts them.
type productPayload struct {
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// analyzeResponse wraps the analysis with the caller-supplied product name.
type analyzeResponse struct {
	Status      string                 `json:"status"`
	ProductName string                 `json:"product_name"`
	Analysis    models.ProductAnalysis `json:"analysis"`
}

// AnalyzeHandler handles product safety analysis requests.
type AnalyzeHandler struct {
	analyzer *services.ProductAnalyzer
	provider llm.ExplanationProvider
	logger   *zap.Logger
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(analyzer *services.ProductAnalyzer, provider llm.ExplanationProvider, logger *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer, provider: provider, logger: logger}
}

// RegisterRoutes registers the analyze handler's routes on the given mux.
func (h *AnalyzeHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/analyze", h.Analyze)
}

// Analyze handles POST /api/analyze requests. The skin profile enums are
// validated here before the engine runs; ingredient resolution falls back
// to the provider when only a product name is supplied.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}

	if req.SkinProfile == nil || req.Product == nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "Missing required fields: skin_profile and product")
		return
	}

	if !models.IsValidSkinType(req.SkinProfile.SkinType) {
		_ = ErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Invalid skin_type. Must be one of: %s", strings.Join(models.ValidSkinTypes, ", ")))
		return
	}
	if !models.IsValidSensitivity(req.SkinProfile.Sensitivity) {
		_ = ErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Invalid sensitivity. Must be one of: %s", strings.Join(models.ValidSensitivities, ", ")))
		return
	}

	if req.Product.Name == "" && req.Product.Ingredients == "" {
		_ = ErrorResponse(w, http.StatusBadRequest, "Missing required fields: product name or ingredients")
		return
	}

	ingredients := req.Product.Ingredients
	if ingredients == "" {
		ingredients = h.provider.ResolveIngredients(r.Context(), req.Product.Name)
	}
	if ingredients == "" {
		_ = ErrorResponse(w, http.StatusBadRequest, "Could not determine ingredients for this product")
		return
	}

	analysis := h.analyzer.Analyze(r.Context(), *req.SkinProfile, ingredients)

	productName := req.Product.Name
	if productName == "" {
		productName = "Unknown Product"
	}

	h.logger.Info("Product analyzed",
		zap.String("product", productName),
		zap.String("overall_safety", analysis.OverallSafety),
		zap.Int("total_ingredients", analysis.TotalIngredients))

	response := analyzeResponse{
		Status:      "success",
		ProductName: productName,
		Analysis:    analysis,
	}
	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode analyze response", zap.Error(err))
	}
}
