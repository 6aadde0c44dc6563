// Package api implements the Muninn REST API using chi.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/torvik/muninn/internal/memoryservice"
)

// NewRouter creates a chi router with all API routes mounted.
// sseHandler, if non-nil, is mounted at GET /events.
func NewRouter(svc *memoryservice.Service, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()

	r.Get("/memories", h.ListMemories)
	r.Get("/memories/search", h.SearchMemories)
	r.Get("/memories/entry", h.GetMemory)
	r.Get("/sources", h.ListSources)

	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
