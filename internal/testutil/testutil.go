// Package testutil provides shared test helpers for setting up memory
// workspaces.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/torvik/muninn/internal/storage"
)

// FixedClock is a deterministic instant for date-inference fallbacks.
var FixedClock = func() time.Time {
	return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
}

// TestWorkspace creates a temporary workspace directory with a storage
// source rooted at it.
func TestWorkspace(t *testing.T) (string, *storage.FS) {
	t.Helper()
	dir := t.TempDir()
	src, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, src
}

// WriteDoc writes a document at rel (relative to the workspace root),
// creating parent directories as needed.
func WriteDoc(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
