package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dexpay/treasuryd/internal/adapter/http/dto"
	"github.com/dexpay/treasuryd/internal/usecase"
)

// AuthService is the auth surface the handler needs.
type AuthService interface {
	Login(ctx context.Context, pin string) (*usecase.LoginResult, error)
	Logout(ctx context.Context, token string) error
}

// AuthHandler handles PIN verification and logout.
type AuthHandler struct {
	authUC AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authUC AuthService) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Login verifies a 4-digit PIN and opens a session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.authUC.Login(r.Context(), req.PIN)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "access denied", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Success: true,
		User:    result.UserName,
		Token:   result.Token,
	})
}

// Logout ends the session named by the bearer token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "missing authorization header", "")
		return
	}

	if err := h.authUC.Logout(r.Context(), token); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to log out", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// bearerToken extracts the token from an Authorization: Bearer header.
func bearerToken(r *http.Request) string {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}
