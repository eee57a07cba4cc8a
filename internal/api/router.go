// Package api implements the Jot REST API using chi.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/fenwick/jot/internal/noteservice"
	"github.com/fenwick/jot/internal/sse"
)

// NewRouter creates a chi router with all API routes mounted.
// allowedOrigins is the CORS allowlist for browser clients.
// broker, if non-nil, is mounted at GET /events and receives change events.
func NewRouter(svc *noteservice.Service, broker *sse.Broker, allowedOrigins []string) chi.Router {
	h := NewHandler(svc, broker)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health.
	r.Get("/health", h.Health)

	// Notes CRUD.
	r.Get("/notes", h.ListNotes)
	r.Post("/notes", h.CreateNote)
	r.Get("/notes/{id}", h.GetNote)
	r.Put("/notes/{id}", h.UpdateNote)
	r.Delete("/notes/{id}", h.DeleteNote)

	// Development utilities.
	r.Post("/utils/seed", h.Seed)
	r.Post("/utils/reset", h.Reset)

	// SSE endpoint.
	if broker != nil {
		r.Get("/events", broker.ServeHTTP)
	}

	return r
}
