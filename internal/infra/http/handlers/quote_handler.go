package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/leadflow/internal/entity"
	"github.com/xavierca1/leadflow/internal/store"
	"github.com/xavierca1/leadflow/internal/usecase"
)

type QuoteHandler struct {
	Store       *store.Store
	CreateQuote *usecase.CreateQuoteUseCase
}

func NewQuoteHandler(st *store.Store, createQuote *usecase.CreateQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{Store: st, CreateQuote: createQuote}
}

// List (GET /quotes?clientId=)
func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.ListQuotes(r.URL.Query().Get("clientId")))
}

func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateQuoteInput
	if !decodeJSON(w, r, &input) {
		return
	}
	output, err := h.CreateQuote.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, output)
}

func (h *QuoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	quote, ok := h.Store.GetQuote(chi.URLParam(r, "id"))
	if !ok {
		notFound(w, entity.ErrQuoteNotFound)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (h *QuoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input entity.QuoteUpdate
	if !decodeJSON(w, r, &input) {
		return
	}
	if input.Status != nil && !input.Status.Valid() {
		writeErrorResponse(w, http.StatusBadRequest, usecase.CodeValidation, "status is not a known quote status")
		return
	}
	quote, ok := h.Store.UpdateQuote(chi.URLParam(r, "id"), input)
	if !ok {
		notFound(w, entity.ErrQuoteNotFound)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (h *QuoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.Store.DeleteQuote(chi.URLParam(r, "id")) {
		notFound(w, entity.ErrQuoteNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
