package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/leadflow/internal/entity"
	"github.com/xavierca1/leadflow/internal/infra/http/middleware"
	"github.com/xavierca1/leadflow/internal/outreach"
	"github.com/xavierca1/leadflow/internal/store"
	"github.com/xavierca1/leadflow/internal/usecase"
)

// SessionHeader identifies the browser session for view tracking.
const SessionHeader = "X-Session-ID"

type LeadHandler struct {
	Store      *store.Store
	CreateLead *usecase.CreateLeadUseCase
	Views      *outreach.ViewTracker
}

func NewLeadHandler(st *store.Store, createLead *usecase.CreateLeadUseCase, views *outreach.ViewTracker) *LeadHandler {
	return &LeadHandler{Store: st, CreateLead: createLead, Views: views}
}

// LeadView is a lead plus how the outreach toggle is offered to this session.
type LeadView struct {
	entity.Lead
	Outreach outreach.Availability `json:"outreach"`
}

func (h *LeadHandler) view(r *http.Request, l entity.Lead) LeadView {
	viewed := h.Views.Viewed(r.Header.Get(SessionHeader), l.ID)
	return LeadView{Lead: l, Outreach: outreach.AvailabilityFor(l, viewed)}
}

// List (GET /leads?platform=&status=&includeClients=)
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := entity.LeadFilter{
		Platform:       entity.PlatformType(q.Get("platform")),
		Status:         entity.LeadStatus(q.Get("status")),
		IncludeClients: q.Get("includeClients") == "true",
	}
	leads := h.Store.ListLeads(filter)
	out := make([]LeadView, 0, len(leads))
	for _, l := range leads {
		out = append(out, h.view(r, l))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input entity.NewLead
	if !decodeJSON(w, r, &input) {
		return
	}
	lead, err := h.CreateLead.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	middleware.RecordLeadsCollected("manual", 1)
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	lead, ok := h.Store.GetLead(chi.URLParam(r, "id"))
	if !ok {
		notFound(w, entity.ErrLeadNotFound)
		return
	}
	writeJSON(w, http.StatusOK, h.view(r, lead))
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input entity.LeadUpdate
	if !decodeJSON(w, r, &input) {
		return
	}
	lead, ok := h.Store.UpdateLead(chi.URLParam(r, "id"), input)
	if !ok {
		notFound(w, entity.ErrLeadNotFound)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.Store.DeleteLead(chi.URLParam(r, "id")) {
		notFound(w, entity.ErrLeadNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BulkDelete (POST /leads/bulk-delete) removes every listed lead it finds.
func (h *LeadHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var input struct {
		IDs []string `json:"ids"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"deleted": h.Store.DeleteLeads(input.IDs)})
}

// MarkSent (PUT /leads/{id}/message-sent) body {"sent": bool}
func (h *LeadHandler) MarkSent(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Sent bool `json:"sent"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}
	lead, ok := h.Store.MarkMessageSent(chi.URLParam(r, "id"), input.Sent)
	if !ok {
		notFound(w, entity.ErrLeadNotFound)
		return
	}
	if input.Sent {
		middleware.RecordMessageSent()
	}
	writeJSON(w, http.StatusOK, h.view(r, lead))
}

// MarkViewed (POST /leads/{id}/view) records that this session opened the
// lead's profile link.
func (h *LeadHandler) MarkViewed(w http.ResponseWriter, r *http.Request) {
	session := r.Header.Get(SessionHeader)
	if session == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_SESSION", SessionHeader+" header is required")
		return
	}
	lead, ok := h.Store.GetLead(chi.URLParam(r, "id"))
	if !ok {
		notFound(w, entity.ErrLeadNotFound)
		return
	}
	h.Views.MarkViewed(session, lead.ID)
	writeJSON(w, http.StatusOK, h.view(r, lead))
}

// Convert (POST /leads/{id}/convert)
func (h *LeadHandler) Convert(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	before, ok := h.Store.GetLead(id)
	if !ok {
		notFound(w, entity.ErrLeadNotFound)
		return
	}
	client, ok := h.Store.ConvertToClient(id)
	if !ok {
		notFound(w, entity.ErrLeadNotFound)
		return
	}
	if !before.IsClient {
		middleware.RecordConversion()
	}
	writeJSON(w, http.StatusOK, client)
}
