package handlers

import (
	"net/http"
	"strings"

	"github.com/xavierca1/leadflow/internal/store"
	"github.com/xavierca1/leadflow/internal/usecase"
)

// AuthHandler is the single-user stub: any e-mail signs in.
type AuthHandler struct {
	Store *store.Store
}

func NewAuthHandler(st *store.Store) *AuthHandler {
	return &AuthHandler{Store: st}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email string `json:"email"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}
	if strings.TrimSpace(input.Email) == "" {
		writeErrorResponse(w, http.StatusBadRequest, usecase.CodeValidation, "email is required")
		return
	}
	writeJSON(w, http.StatusOK, h.Store.Login(input.Email))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Store.Logout()
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.Store.CurrentUser()
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHENTICATED", "Not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
