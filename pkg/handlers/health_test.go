package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dermasafe-inc/dermasafe-engine/pkg/catalog"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/config"
)

func newHealthMux() *http.ServeMux {
	cfg := &config.Config{Version: "1.2.3"}
	mux := http.NewServeMux()
	NewHealthHandler(cfg, catalog.Default(), zap.NewNop()).RegisterRoutes(mux)
	return mux
}

func TestHealth(t *testing.T) {
	mux := newHealthMux()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "1.2.3", resp.Version)
	assert.Equal(t, catalog.Default().Len(), resp.DatabaseSize)

	_, err := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err)
}

func TestDocs(t *testing.T) {
	mux := newHealthMux()

	req := httptest.NewRequest(http.MethodGet, "/api/docs", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status    string            `json:"status"`
		Service   string            `json:"service"`
		Endpoints map[string]string `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "online", resp.Status)
	assert.Equal(t, "DermaSafe API", resp.Service)
	assert.Contains(t, resp.Endpoints, "POST /api/analyze")
}
