package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/leadflow/internal/infra/http/middleware"
)

type Router struct {
	Leads       *LeadHandler
	Clients     *ClientHandler
	Quotes      *QuoteHandler
	Profiles    *ProfileHandler
	Analytics   *AnalyticsHandler
	Import      *ImportHandler
	Landing     *LandingHandler
	Auth        *AuthHandler
	Health      *HealthHandler
	CORSOrigins []string
}

func (rt Router) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", SessionHeader},
	}))

	r.Get("/health", rt.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", rt.Auth.Login)
		r.Post("/logout", rt.Auth.Logout)
		r.Get("/me", rt.Auth.Me)
	})

	r.Route("/leads", func(r chi.Router) {
		r.Get("/", rt.Leads.List)
		r.Post("/", rt.Leads.Create)
		r.Post("/import", rt.Import.Handle)
		r.Post("/bulk-delete", rt.Leads.BulkDelete)
		r.Get("/{id}", rt.Leads.Get)
		r.Patch("/{id}", rt.Leads.Update)
		r.Delete("/{id}", rt.Leads.Delete)
		r.Put("/{id}/message-sent", rt.Leads.MarkSent)
		r.Post("/{id}/view", rt.Leads.MarkViewed)
		r.Post("/{id}/convert", rt.Leads.Convert)
	})

	r.Route("/clients", func(r chi.Router) {
		r.Get("/", rt.Clients.List)
		r.Post("/", rt.Clients.Create)
		r.Get("/{id}", rt.Clients.Get)
		r.Patch("/{id}", rt.Clients.Update)
		r.Delete("/{id}", rt.Clients.Delete)
		r.Post("/{id}/services", rt.Clients.AddService)
		r.Get("/{id}/timeline", rt.Clients.Timeline)
		r.Post("/{id}/timeline", rt.Clients.AddTimelineEvent)
		r.Post("/{id}/messages", rt.Clients.RecordMessage)
	})

	r.Route("/quotes", func(r chi.Router) {
		r.Get("/", rt.Quotes.List)
		r.Post("/", rt.Quotes.Create)
		r.Get("/{id}", rt.Quotes.Get)
		r.Patch("/{id}", rt.Quotes.Update)
		r.Delete("/{id}", rt.Quotes.Delete)
	})

	r.Route("/profiles", func(r chi.Router) {
		r.Get("/", rt.Profiles.List)
		r.Post("/", rt.Profiles.Create)
		r.Patch("/{id}", rt.Profiles.Update)
		r.Delete("/{id}", rt.Profiles.Delete)
	})
	r.Post("/messages/generate", rt.Profiles.Generate)
	r.Get("/settings", rt.Profiles.GetSettings)
	r.Patch("/settings", rt.Profiles.UpdateSettings)

	r.Get("/stats", rt.Analytics.Stats)
	r.Get("/analytics/daily", rt.Analytics.Daily)

	r.Post("/landing", rt.Landing.Capture)
	r.Get("/landing/submissions", rt.Landing.List)

	return r
}
