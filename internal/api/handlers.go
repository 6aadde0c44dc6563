package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/torvik/muninn/internal/apperr"
	"github.com/torvik/muninn/internal/memoryservice"
	"github.com/torvik/muninn/internal/models"
	"github.com/torvik/muninn/internal/query"
)

// Handler holds API route handlers.
type Handler struct {
	svc *memoryservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *memoryservice.Service) *Handler {
	return &Handler{svc: svc}
}

// ListMemories handles GET /memories: the full load result.
func (h *Handler) ListMemories(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Load(r.Context())
	if err != nil {
		slog.Error("load memories failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, loadErrorBody{
			Error:    "failed to load memories",
			Memories: []models.Entry{},
			Meta:     models.Meta{SourceFiles: []string{}},
		})
		return
	}
	writeJSON(w, http.StatusOK, MemoriesResponse{Memories: res.Entries, Meta: res.Meta})
}

// SearchMemories handles GET /memories/search with q, source, from, to,
// and sort query parameters.
func (h *Handler) SearchMemories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := query.Criteria{
		Text:       q.Get("q"),
		SourceFile: q.Get("source"),
		From:       q.Get("from"),
		To:         q.Get("to"),
		Sort:       query.Sort(q.Get("sort")),
	}

	entries, err := h.svc.Search(r.Context(), criteria)
	if err != nil {
		slog.Error("search memories failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, SearchResponse{Memories: entries, Total: len(entries)})
}

// GetMemory handles GET /memories/entry?id=. Entry ids contain slashes,
// so the id travels as a query parameter rather than a path segment.
func (h *Handler) GetMemory(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'id' is required"))
		return
	}
	entry, err := h.svc.GetEntry(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("get memory failed", slog.String("id", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// ListSources handles GET /sources.
func (h *Handler) ListSources(w http.ResponseWriter, r *http.Request) {
	sources, err := h.svc.Sources(r.Context())
	if err != nil {
		slog.Error("list sources failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if sources == nil {
		sources = []string{}
	}
	writeJSON(w, http.StatusOK, SourcesResponse{Sources: sources})
}
