package handlers

import (
	"net/http"
	"time"

	"github.com/xavierca1/leadflow/internal/entity"
	"github.com/xavierca1/leadflow/internal/store"
)

type AnalyticsHandler struct {
	Store *store.Store
}

func NewAnalyticsHandler(st *store.Store) *AnalyticsHandler {
	return &AnalyticsHandler{Store: st}
}

// Stats (GET /stats) is recomputed from the collections on every call.
func (h *AnalyticsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.Stats())
}

// Daily (GET /analytics/daily?date=YYYY-MM-DD) returns the whole log, or a
// single day when date is given.
func (h *AnalyticsHandler) Daily(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		writeJSON(w, http.StatusOK, h.Store.DailyAnalytics())
		return
	}
	if _, err := time.Parse(entity.DateLayout, date); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_DATE", "date must be YYYY-MM-DD")
		return
	}
	writeJSON(w, http.StatusOK, h.Store.DailyRecord(date))
}
