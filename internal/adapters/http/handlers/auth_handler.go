package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/menu-cms/internal/adapters/http/dto"
	"github.com/jsamuelsen11/menu-cms/internal/ports"
)

// AuthHandler exchanges the admin password for a bearer token.
type AuthHandler struct {
	svc ports.AuthService
}

// NewAuthHandler creates a new AuthHandler with the given service port.
func NewAuthHandler(svc ports.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tok, err := h.svc.Login(r.Context(), req.Password)
	if err != nil {
		w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, dto.ToTokenResponse(tok))
}
