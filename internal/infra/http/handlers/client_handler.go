package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/leadflow/internal/entity"
	"github.com/xavierca1/leadflow/internal/infra/http/middleware"
	"github.com/xavierca1/leadflow/internal/store"
	"github.com/xavierca1/leadflow/internal/usecase"
)

type ClientHandler struct {
	Store        *store.Store
	CreateClient *usecase.CreateClientUseCase
	Messages     *usecase.GenerateMessageUseCase
	AddEvent     *usecase.AddTimelineEventUseCase
}

func NewClientHandler(st *store.Store, createClient *usecase.CreateClientUseCase, messages *usecase.GenerateMessageUseCase, addEvent *usecase.AddTimelineEventUseCase) *ClientHandler {
	return &ClientHandler{Store: st, CreateClient: createClient, Messages: messages, AddEvent: addEvent}
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.ListClients())
}

// Create (POST /clients) adds a client without going through the pipeline.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateClientInput
	if !decodeJSON(w, r, &input) {
		return
	}
	client, err := h.CreateClient.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	middleware.RecordLeadsCollected("direct", 1)
	middleware.RecordConversion()
	writeJSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	client, ok := h.Store.GetClient(chi.URLParam(r, "id"))
	if !ok {
		notFound(w, entity.ErrClientNotFound)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input entity.ClientUpdate
	if !decodeJSON(w, r, &input) {
		return
	}
	client, ok := h.Store.UpdateClient(chi.URLParam(r, "id"), input)
	if !ok {
		notFound(w, entity.ErrClientNotFound)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

// Delete reverts the client to an Interested lead.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.Store.DeleteClient(chi.URLParam(r, "id")) {
		notFound(w, entity.ErrClientNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ClientHandler) AddService(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Service string `json:"service"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}
	if input.Service == "" {
		writeErrorResponse(w, http.StatusBadRequest, usecase.CodeValidation, "service is required")
		return
	}
	client, ok := h.Store.AddClientService(chi.URLParam(r, "id"), input.Service)
	if !ok {
		notFound(w, entity.ErrClientNotFound)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.Store.GetClient(id); !ok {
		notFound(w, entity.ErrClientNotFound)
		return
	}
	writeJSON(w, http.StatusOK, h.Store.ListTimeline(id))
}

// RecordMessage (POST /clients/{id}/messages) logs a sent message on the
// client's timeline.
func (h *ClientHandler) RecordMessage(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Message string `json:"message"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}
	event, err := h.Messages.RecordClientMessage(r.Context(), chi.URLParam(r, "id"), input.Message)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

// AddTimelineEvent (POST /clients/{id}/timeline) body {"type", "content"}
func (h *ClientHandler) AddTimelineEvent(w http.ResponseWriter, r *http.Request) {
	var input entity.NewTimelineEvent
	if !decodeJSON(w, r, &input) {
		return
	}
	input.ClientID = chi.URLParam(r, "id")
	event, err := h.AddEvent.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}
