package api

import "github.com/torvik/muninn/internal/models"

// MemoriesResponse is the envelope for GET /memories, matching the shape
// the display layer consumes directly.
type MemoriesResponse struct {
	Memories []models.Entry `json:"memories"`
	Meta     models.Meta    `json:"meta"`
}

// SearchResponse wraps a filtered/sorted result set.
type SearchResponse struct {
	Memories []models.Entry `json:"memories"`
	Total    int            `json:"total"`
}

// SourcesResponse lists the distinct source files of the collection.
type SourcesResponse struct {
	Sources []string `json:"sources"`
}

// loadErrorBody is the degraded envelope returned when a load fails: the
// display layer still receives a renderable empty collection.
type loadErrorBody struct {
	Error    string         `json:"error"`
	Memories []models.Entry `json:"memories"`
	Meta     models.Meta    `json:"meta"`
}
