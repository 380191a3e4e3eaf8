package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/leadflow/internal/entity"
	"github.com/xavierca1/leadflow/internal/store"
	"github.com/xavierca1/leadflow/internal/usecase"
)

// ProfileHandler serves message profiles, message generation and settings.
type ProfileHandler struct {
	Store    *store.Store
	Messages *usecase.GenerateMessageUseCase
}

func NewProfileHandler(st *store.Store, messages *usecase.GenerateMessageUseCase) *ProfileHandler {
	return &ProfileHandler{Store: st, Messages: messages}
}

func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.ListMessageProfiles())
}

func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input entity.MessageProfile
	if !decodeJSON(w, r, &input) {
		return
	}
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Template) == "" {
		writeErrorResponse(w, http.StatusBadRequest, usecase.CodeValidation, "name and template are required")
		return
	}
	writeJSON(w, http.StatusCreated, h.Store.AddMessageProfile(input))
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input entity.MessageProfileUpdate
	if !decodeJSON(w, r, &input) {
		return
	}
	profile, ok := h.Store.UpdateMessageProfile(chi.URLParam(r, "id"), input)
	if !ok {
		notFound(w, entity.ErrProfileNotFound)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.Store.DeleteMessageProfile(chi.URLParam(r, "id")) {
		notFound(w, entity.ErrProfileNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Generate (POST /messages/generate)
func (h *ProfileHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var input usecase.GenerateMessageInput
	if !decodeJSON(w, r, &input) {
		return
	}
	output, err := h.Messages.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *ProfileHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.Settings())
}

func (h *ProfileHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var input entity.SettingsUpdate
	if !decodeJSON(w, r, &input) {
		return
	}
	writeJSON(w, http.StatusOK, h.Store.UpdateSettings(input))
}
