// Package memoryservice coordinates the loader and query engine for the
// API and MCP layers.
package memoryservice

import (
	"context"

	"github.com/torvik/muninn/internal/apperr"
	"github.com/torvik/muninn/internal/memory"
	"github.com/torvik/muninn/internal/models"
	"github.com/torvik/muninn/internal/query"
)

// Service is the read-only facade over the memory engine. Every call
// rereads the workspace; nothing is cached between calls.
type Service struct {
	loader *memory.Loader
}

// NewService creates a new memory service.
func NewService(loader *memory.Loader) *Service {
	return &Service{loader: loader}
}

// Load returns the full collection with its meta summary.
func (s *Service) Load(ctx context.Context) (*models.LoadResult, error) {
	return s.loader.Load(ctx)
}

// Search loads the collection and applies the given criteria.
func (s *Service) Search(ctx context.Context, c query.Criteria) ([]models.Entry, error) {
	res, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return query.Run(res.Entries, c), nil
}

// GetEntry returns the entry with the given id, or apperr.ErrNotFound.
// Ids are stable within one load; a stale id after the files change
// simply misses.
func (s *Service) GetEntry(ctx context.Context, id string) (*models.Entry, error) {
	res, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range res.Entries {
		if res.Entries[i].ID == id {
			return &res.Entries[i], nil
		}
	}
	return nil, apperr.ErrNotFound
}

// Sources returns the distinct source files of the current collection.
func (s *Service) Sources(ctx context.Context) ([]string, error) {
	res, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return res.Meta.SourceFiles, nil
}
