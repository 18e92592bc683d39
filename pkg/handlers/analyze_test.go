package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dermasafe-inc/dermasafe-engine/pkg/catalog"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/llm"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/models"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/services"
)

func newAnalyzeMux(provider llm.ExplanationProvider) *http.ServeMux {
	logger := zap.NewNop()
	scorer := services.NewScorer(catalog.Default())
	analyzer := services.NewProductAnalyzer(scorer, provider, 0, logger)

	mux := http.NewServeMux()
	NewAnalyzeHandler(analyzer, provider, logger).RegisterRoutes(mux)
	return mux
}

func postAnalyze(t *testing.T, mux *http.ServeMux, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestAnalyzeSuccess(t *testing.T) {
	mux := newAnalyzeMux(llm.NewMockProvider())

	rec := postAnalyze(t, mux, map[string]any{
		"skin_profile": map[string]any{
			"skin_type":   "dry",
			"sensitivity": "mild",
			"allergies":   []string{},
		},
		"product": map[string]any{
			"name":        "Glow Toner",
			"ingredients": "Water, Glycolic Acid, Niacinamide",
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp analyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Glow Toner", resp.ProductName)
	assert.Equal(t, models.StatusNotRecommended, resp.Analysis.OverallSafety)
	assert.Equal(t, 3, resp.Analysis.TotalIngredients)
}

func TestAnalyzeDefaultsProductName(t *testing.T) {
	mux := newAnalyzeMux(llm.NewMockProvider())

	rec := postAnalyze(t, mux, map[string]any{
		"skin_profile": map[string]any{"skin_type": "normal", "sensitivity": "none"},
		"product":      map[string]any{"ingredients": "Water"},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp analyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Unknown Product", resp.ProductName)
}

func TestAnalyzeResolvesIngredientsFromName(t *testing.T) {
	provider := llm.NewMockProvider()
	provider.ResolveIngredientsFunc = func(ctx context.Context, productName string) string {
		assert.Equal(t, "Night Cream", productName)
		return "Water, Retinol, Shea Butter"
	}
	mux := newAnalyzeMux(provider)

	rec := postAnalyze(t, mux, map[string]any{
		"skin_profile": map[string]any{"skin_type": "oily", "sensitivity": "none"},
		"product":      map[string]any{"name": "Night Cream"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, provider.ResolveIngredientsCalls)

	var resp analyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Analysis.TotalIngredients)
}

func TestAnalyzeResolverReturnsNothing(t *testing.T) {
	provider := llm.NewMockProvider()
	provider.ResolveIngredientsFunc = func(ctx context.Context, productName string) string {
		return ""
	}
	mux := newAnalyzeMux(provider)

	rec := postAnalyze(t, mux, map[string]any{
		"skin_profile": map[string]any{"skin_type": "oily", "sensitivity": "none"},
		"product":      map[string]any{"name": "Mystery Product"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Could not determine ingredients for this product", decodeError(t, rec))
}

func TestAnalyzeValidation(t *testing.T) {
	mux := newAnalyzeMux(llm.NewMockProvider())

	tests := []struct {
		name        string
		body        map[string]any
		wantMessage string
	}{
		{
			"missing profile",
			map[string]any{"product": map[string]any{"ingredients": "Water"}},
			"Missing required fields: skin_profile and product",
		},
		{
			"missing product",
			map[string]any{"skin_profile": map[string]any{"skin_type": "dry", "sensitivity": "mild"}},
			"Missing required fields: skin_profile and product",
		},
		{
			"invalid skin type",
			map[string]any{
				"skin_profile": map[string]any{"skin_type": "scaly", "sensitivity": "mild"},
				"product":      map[string]any{"ingredients": "Water"},
			},
			"Invalid skin_type. Must be one of: normal, dry, oily, combination, sensitive",
		},
		{
			"invalid sensitivity",
			map[string]any{
				"skin_profile": map[string]any{"skin_type": "dry", "sensitivity": "extreme"},
				"product":      map[string]any{"ingredients": "Water"},
			},
			"Invalid sensitivity. Must be one of: none, mild, moderate, severe",
		},
		{
			"empty product",
			map[string]any{
				"skin_profile": map[string]any{"skin_type": "dry", "sensitivity": "mild"},
				"product":      map[string]any{},
			},
			"Missing required fields: product name or ingredients",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postAnalyze(t, mux, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeError(t, rec))
		})
	}
}

func TestAnalyzeRejectsInvalidJSON(t *testing.T) {
	mux := newAnalyzeMux(llm.NewMockProvider())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Request body must be valid JSON", decodeError(t, rec))
}
