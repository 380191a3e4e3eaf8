package handlers

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/xavierca1/leadflow/internal/entity"
	"github.com/xavierca1/leadflow/internal/infra/http/middleware"
	"github.com/xavierca1/leadflow/internal/store"
	"github.com/xavierca1/leadflow/internal/usecase"
)

type LandingHandler struct {
	Store          *store.Store
	CaptureLanding *usecase.CaptureLandingUseCase
	rateLimiter    *RateLimiter
}

func NewLandingHandler(st *store.Store, capture *usecase.CaptureLandingUseCase, limiter *RateLimiter) *LandingHandler {
	return &LandingHandler{Store: st, CaptureLanding: capture, rateLimiter: limiter}
}

type CaptureLandingResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	SubmissionID string `json:"submissionId,omitempty"`
}

// Capture (POST /landing) is the public intake form.
func (h *LandingHandler) Capture(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, CaptureLandingResponse{
			Success: false,
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	var req entity.NewLandingSubmission
	if !decodeJSON(w, r, &req) {
		return
	}

	output, err := h.CaptureLanding.Execute(r.Context(), req)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLandingSubmission()
	middleware.RecordLeadsCollected("landing", 1)
	writeJSON(w, http.StatusCreated, CaptureLandingResponse{
		Success:      true,
		SubmissionID: output.Submission.ID,
	})
}

func (h *LandingHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.ListLandingSubmissions())
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// RateLimiter is a fixed-window counter per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
	now      func() time.Time
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := rl.now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

// Run evicts idle visitors every interval until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := rl.now()
	for ip, v := range rl.visitors {
		if now.Sub(v.lastReset) > rl.window*2 {
			delete(rl.visitors, ip)
		}
	}
}
