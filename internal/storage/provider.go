// Package storage defines the read-only workspace file-system abstraction.
package storage

import "github.com/torvik/muninn/internal/models"

// Source is the interface for reading memory documents from the workspace.
// The memory engine never writes; the files are authored externally.
type Source interface {
	// List returns metadata for every file under dir (relative to the
	// workspace root) whose name carries one of the given extensions.
	// A missing directory is not an error and yields no results.
	List(dir string, exts []string) ([]models.DocumentMeta, error)
	// Read returns the raw bytes of the file at path (relative to the
	// workspace root).
	Read(path string) ([]byte, error)
}
