package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/dermasafe-inc/dermasafe-engine/pkg/catalog"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/config"
)

// HealthResponse contains service status information.
type HealthResponse struct {
	Status       string `json:"status"`
	Timestamp    string `json:"timestamp"`
	DatabaseSize int    `json:"database_size"`
	Version      string `json:"version"`
}

// HealthHandler handles health check and documentation endpoints.
type HealthHandler struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewHealthHandler creates a new HealthHandler with the given configuration.
func NewHealthHandler(cfg *config.Config, c *catalog.Catalog, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{cfg: cfg, catalog: c, logger: logger}
}

// RegisterRoutes registers the health handler's routes on the given mux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/docs", h.Docs)
}

// Health handles GET /api/health requests.
// Reports service status and the size of the ingredient catalog.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:       "healthy",
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		DatabaseSize: h.catalog.Len(),
		Version:      h.cfg.Version,
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode health response", zap.Error(err))
	}
}

// Docs handles GET /api/docs requests with a short endpoint index.
func (h *HealthHandler) Docs(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":  "online",
		"service": "DermaSafe API",
		"version": h.cfg.Version,
		"endpoints": map[string]string{
			"POST /api/analyze":    "Analyze product safety",
			"GET /api/health":      "Health check",
			"GET /api/ingredients": "List known ingredients",
			"POST /api/register":   "Register an account",
			"POST /api/login":      "Log in",
		},
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode docs response", zap.Error(err))
	}
}
