package memory

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/torvik/muninn/internal/inference"
	"github.com/torvik/muninn/internal/models"
	"github.com/torvik/muninn/internal/segment"
	"github.com/torvik/muninn/internal/storage"
)

// readConcurrency bounds the daily-file fan-out per load call.
const readConcurrency = 8

// Config locates the memory documents inside the workspace.
type Config struct {
	LongTermFile string   // e.g. "MEMORY.md"
	DailyDir     string   // e.g. "memory"
	Extensions   []string // recognized daily-file extensions, e.g. [".md"]
}

// Loader rebuilds the full entry collection from the workspace on every
// Load call. Calls are independent; no state is shared between them.
type Loader struct {
	src    storage.Source
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Loader.
type Option func(*Loader)

// WithClock overrides the wall clock used for undated content. Tests
// supply a fixed instant; production uses time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Loader) {
		l.now = now
	}
}

// NewLoader creates a loader over the given source.
func NewLoader(src storage.Source, cfg Config, logger *slog.Logger, opts ...Option) *Loader {
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = []string{".md"}
	}
	l := &Loader{
		src:    src,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the long-term document and every recognized daily document,
// runs each through the segmentation pipeline, and returns the merged,
// globally sorted collection. Missing sources contribute nothing; only a
// listing failure on an existing daily directory propagates.
func (l *Loader) Load(ctx context.Context) (*models.LoadResult, error) {
	var entries []models.Entry

	if data, err := l.src.Read(l.cfg.LongTermFile); err == nil {
		entries = append(entries, l.parseDocument(l.cfg.LongTermFile, models.SourceLongTerm, string(data))...)
	} else if !errors.Is(err, fs.ErrNotExist) {
		l.logger.Warn("load: long-term read failed",
			slog.String("path", l.cfg.LongTermFile),
			slog.String("error", err.Error()))
	}

	metas, err := l.src.List(l.cfg.DailyDir, l.cfg.Extensions)
	if err != nil {
		return nil, err
	}

	// Daily documents are independent; read them concurrently and merge
	// after all reads complete. The global sort below removes any
	// dependency on completion order.
	results := make([][]models.Entry, len(metas))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(readConcurrency)
	for i, m := range metas {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			data, readErr := l.src.Read(m.Path)
			if readErr != nil {
				l.logger.Warn("load: daily read failed",
					slog.String("path", m.Path),
					slog.String("error", readErr.Error()))
				return nil
			}
			results[i] = l.parseDocument(m.Path, models.SourceDaily, string(data))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, r := range results {
		entries = append(entries, r...)
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.After(entries[j].Date)
		}
		return entries[i].Title < entries[j].Title
	})

	meta := models.Meta{
		Total:       len(entries),
		SourceFiles: distinctSourceFiles(entries),
	}
	if len(entries) > 0 {
		newest := entries[0].Date
		oldest := entries[len(entries)-1].Date
		meta.NewestDate = &newest
		meta.OldestDate = &oldest
	}

	return &models.LoadResult{Entries: entries, Meta: meta}, nil
}

// parseDocument runs one document through the segment/inference/build
// pipeline. Sections that normalize to empty content are dropped; a
// document with no headings becomes a single whole-document entry.
func (l *Loader) parseDocument(sourceFile string, sourceType models.SourceType, content string) []models.Entry {
	docDate, ok := inference.InferDate(sourceFile, content)
	if !ok {
		docDate = l.now()
	}

	sections := segment.Split(content)
	if len(sections) == 0 {
		entry := Build(BuildParams{
			SourceFile:   sourceFile,
			SourceType:   sourceType,
			Date:         docDate,
			Title:        sourceFile,
			Content:      content,
			Tags:         inference.ExtractTags(content),
			SectionIndex: 0,
		})
		if entry.Content == "" {
			return nil
		}
		return []models.Entry{entry}
	}

	out := make([]models.Entry, 0, len(sections))
	for i, sec := range sections {
		date, ok := inference.InferDate(sourceFile, sec.Body)
		if !ok {
			date = docDate
		}
		entry := Build(BuildParams{
			SourceFile:   sourceFile,
			SourceType:   sourceType,
			Date:         date,
			Title:        sec.Title,
			Content:      sec.Body,
			Tags:         inference.ExtractTags(sec.Body),
			SectionIndex: i,
		})
		if entry.Content == "" {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// distinctSourceFiles preserves first-seen order over the sorted entries.
func distinctSourceFiles(entries []models.Entry) []string {
	seen := make(map[string]struct{}, len(entries))
	out := []string{}
	for _, e := range entries {
		if _, ok := seen[e.SourceFile]; ok {
			continue
		}
		seen[e.SourceFile] = struct{}{}
		out = append(out, e.SourceFile)
	}
	return out
}
