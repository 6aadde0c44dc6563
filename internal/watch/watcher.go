// Package watch observes the memory workspace and reports document
// changes. It is purely advisory: the loader rereads from disk on every
// request, so a missed event never leaves stale state behind.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// EventCallback is called for each relevant document change.
// kind is one of "created", "updated", "deleted"; path is relative to the
// workspace root.
type EventCallback func(kind string, path string)

// Config names the documents worth watching inside the workspace.
type Config struct {
	LongTermFile string   // e.g. "MEMORY.md"
	DailyDir     string   // e.g. "memory"
	Extensions   []string // recognized daily-file extensions
}

// Watch starts an fsnotify watcher on the workspace root and processes
// file change events until ctx is cancelled. It calls cb (if non-nil) for
// every change to the long-term file or a recognized daily document.
//
// Directories created at runtime (including a daily directory that did
// not exist at startup) are automatically added to the watch list.
// fsnotify fires Rename on the old path only; it is reported as a delete,
// and the new path arrives as a separate Create event.
func Watch(ctx context.Context, root string, cfg Config, logger *slog.Logger, cb EventCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addDirsRecursive(w, root); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("root", root))

	for {
		select {
		case <-ctx.Done():
			logger.Info("watcher: stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			absPath := ev.Name

			// New directories are added to the watcher; any relevant
			// documents already inside them are reported as created.
			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(absPath); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, absPath); addErr != nil {
						logger.Warn("watcher: add new dir failed",
							slog.String("path", absPath),
							slog.String("error", addErr.Error()))
					} else {
						logger.Debug("watcher: watching new dir", slog.String("path", absPath))
					}
					reportNewDir(root, absPath, cfg, logger, cb)
					continue
				}
			}

			rel, relErr := filepath.Rel(root, absPath)
			if relErr != nil || !cfg.relevant(rel) {
				continue
			}

			switch {
			case ev.Op&fsnotify.Create != 0:
				logger.Debug("watcher: created", slog.String("path", rel))
				if cb != nil {
					cb("created", rel)
				}
			case ev.Op&fsnotify.Write != 0:
				logger.Debug("watcher: updated", slog.String("path", rel))
				if cb != nil {
					cb("updated", rel)
				}
			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				logger.Debug("watcher: deleted", slog.String("path", rel))
				if cb != nil {
					cb("deleted", rel)
				}
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// relevant reports whether rel (relative to the workspace root) is a
// document the memory engine reads.
func (c Config) relevant(rel string) bool {
	rel = filepath.ToSlash(rel)
	if rel == c.LongTermFile {
		return true
	}
	if !strings.HasPrefix(rel, c.DailyDir+"/") {
		return false
	}
	for _, ext := range c.Extensions {
		if strings.HasSuffix(rel, ext) {
			return true
		}
	}
	return false
}

// reportNewDir reports any relevant documents found in a newly created
// directory (the create events for its contents may have been missed).
func reportNewDir(root, dirPath string, cfg Config, logger *slog.Logger, cb EventCallback) {
	_ = filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || !cfg.relevant(rel) {
			return nil
		}
		logger.Debug("watcher: found in new dir", slog.String("path", rel))
		if cb != nil {
			cb("created", rel)
		}
		return nil
	})
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
