package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dermasafe-inc/dermasafe-engine/pkg/catalog"
)

func newIngredientsMux() *http.ServeMux {
	mux := http.NewServeMux()
	NewIngredientsHandler(catalog.Default(), zap.NewNop()).RegisterRoutes(mux)
	return mux
}

func getIngredients(t *testing.T, mux *http.ServeMux, query string) ingredientsResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/ingredients"+query, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ingredientsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestListIngredients(t *testing.T) {
	mux := newIngredientsMux()

	resp := getIngredients(t, mux, "")

	assert.Equal(t, catalog.Default().Len(), resp.Count)
	require.NotEmpty(t, resp.Ingredients)
	assert.Equal(t, "fragrance", resp.Ingredients[0].Name)
}

func TestListIngredientsFiltered(t *testing.T) {
	mux := newIngredientsMux()

	byCategory := getIngredients(t, mux, "?category=paraben")
	assert.Equal(t, 3, byCategory.Count)
	for _, rec := range byCategory.Ingredients {
		assert.Equal(t, "paraben", rec.Category)
	}

	byRisk := getIngredients(t, mux, "?risk_level=high")
	assert.Equal(t, 4, byRisk.Count)

	combined := getIngredients(t, mux, "?category=retinoid&risk_level=high")
	require.Equal(t, 1, combined.Count)
	assert.Equal(t, "tretinoin", combined.Ingredients[0].Name)

	none := getIngredients(t, mux, "?category=unknown")
	assert.Equal(t, 0, none.Count)
}
