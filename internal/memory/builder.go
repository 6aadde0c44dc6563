// Package memory implements the memory ingestion pipeline: building
// normalized entries from document sections and loading the full
// collection from the workspace.
package memory

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/torvik/muninn/internal/models"
)

const (
	previewLen  = 220
	maxSlugLen  = 32
	untitledRef = "Untitled memory"
)

var (
	blankRunRe = regexp.MustCompile(`\n{3,}`)
	nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)
)

// BuildParams carries everything needed to construct one entry.
// Date inference happens upstream; Build is pure and deterministic.
type BuildParams struct {
	SourceFile   string
	SourceType   models.SourceType
	Date         time.Time
	Title        string
	Content      string
	Tags         []string
	SectionIndex int
}

// Build normalizes a section into a canonical memory entry.
func Build(p BuildParams) models.Entry {
	content := Normalize(p.Content)

	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = untitledRef
	}

	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	return models.Entry{
		ID:         fmt.Sprintf("%s-%d-%s", p.SourceFile, p.SectionIndex, truncate(slugify(p.Title), maxSlugLen)),
		Title:      title,
		Content:    content,
		Preview:    truncate(content, previewLen),
		Tags:       tags,
		SourceFile: p.SourceFile,
		SourceType: p.SourceType,
		Date:       p.Date,
		DateLabel:  p.Date.Format("Mon, 2 Jan 2006"),
	}
}

// Normalize collapses runs of three or more newlines to exactly two and
// trims surrounding whitespace. Idempotent.
func Normalize(content string) string {
	return strings.TrimSpace(blankRunRe.ReplaceAllString(content, "\n\n"))
}

// slugify lowercases, replaces runs of non-alphanumerics with a single
// hyphen, and trims leading/trailing hyphens.
func slugify(value string) string {
	s := nonAlnumRe.ReplaceAllString(strings.ToLower(value), "-")
	return strings.Trim(s, "-")
}

// truncate cuts s to at most n runes. Mid-word cuts are accepted.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
