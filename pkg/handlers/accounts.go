package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/dermasafe-inc/dermasafe-engine/pkg/apperrors"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/services"
)

// registerRequest is the POST /api/register payload.
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginRequest is the POST /api/login payload.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountsHandler handles registration and login.
type AccountsHandler struct {
	accounts services.AccountService
	logger   *zap.Logger
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(accounts services.AccountService, logger *zap.Logger) *AccountsHandler {
	return &AccountsHandler{accounts: accounts, logger: logger}
}

// RegisterRoutes registers the account handler's routes on the given mux.
func (h *AccountsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/register", h.Register)
	mux.HandleFunc("POST /api/login", h.Login)
}

// Register handles POST /api/register requests.
func (h *AccountsHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		_ = ErrorResponse(w, http.StatusBadRequest, "Name, email, and password are required")
		return
	}

	_, err := h.accounts.Register(r.Context(), req.Name, req.Email, req.Password)
	if errors.Is(err, apperrors.ErrConflict) {
		_ = ErrorResponse(w, http.StatusConflict, "User already registered")
		return
	}
	if err != nil {
		h.logger.Error("Registration failed", zap.Error(err))
		_ = ErrorResponse(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	_ = WriteJSON(w, http.StatusCreated, map[string]string{
		"status":  "success",
		"message": "Registration successful!",
	})
}

// Login handles POST /api/login requests.
func (h *AccountsHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}

	if req.Email == "" || req.Password == "" {
		_ = ErrorResponse(w, http.StatusBadRequest, "Email and password required")
		return
	}

	account, token, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, apperrors.ErrInvalidCredentials) {
		_ = ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		h.logger.Error("Login failed", zap.Error(err))
		_ = ErrorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}

	_ = WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"token":  token,
		"user": map[string]string{
			"name":  account.Name,
			"email": account.Email,
		},
	})
}
