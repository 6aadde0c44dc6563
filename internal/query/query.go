// Package query filters and re-sorts a loaded memory collection. It is a
// pure linear scan: the collection is rebuilt per load and sized in the
// hundreds, so no index is kept.
package query

import (
	"regexp"
	"sort"
	"strings"

	"github.com/torvik/muninn/internal/models"
)

// Sort orders supported by Run.
type Sort string

const (
	SortNewest    Sort = "newest"
	SortOldest    Sort = "oldest"
	SortTitleAsc  Sort = "title-asc"
	SortTitleDesc Sort = "title-desc"
)

// SourceAll is the sentinel meaning no source-file restriction.
const SourceAll = "all"

// Criteria are AND-composed; zero values deactivate each dimension.
type Criteria struct {
	Text       string // case-insensitive substring
	SourceFile string // exact sourceFile, "" or "all" for no restriction
	From       string // inclusive YYYY-MM-DD lower bound
	To         string // inclusive YYYY-MM-DD upper bound
	Sort       Sort   // defaults to newest-first
}

var dateKeyRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// Run returns the entries matching c, in the requested order. The input
// slice is never mutated.
func Run(entries []models.Entry, c Criteria) []models.Entry {
	needle := strings.ToLower(strings.TrimSpace(c.Text))

	out := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if needle != "" && !matchesText(e, needle) {
			continue
		}
		if c.SourceFile != "" && c.SourceFile != SourceAll && e.SourceFile != c.SourceFile {
			continue
		}
		if !withinRange(e, c.From, c.To) {
			continue
		}
		out = append(out, e)
	}

	sortEntries(out, c.Sort)
	return out
}

func matchesText(e models.Entry, needle string) bool {
	haystack := strings.ToLower(strings.Join([]string{
		e.Title, e.Content, strings.Join(e.Tags, " "), e.SourceFile,
	}, " "))
	return strings.Contains(haystack, needle)
}

// dateKey derives the YYYY-MM-DD comparison key for range filtering: a
// date embedded in the source file name wins over the entry date.
func dateKey(e models.Entry) string {
	if m := dateKeyRe.FindString(e.SourceFile); m != "" {
		return m
	}
	if e.Date.IsZero() {
		return ""
	}
	return e.Date.UTC().Format("2006-01-02")
}

func withinRange(e models.Entry, from, to string) bool {
	if from == "" && to == "" {
		return true
	}
	key := dateKey(e)
	if key == "" {
		return false
	}
	if from != "" && key < from {
		return false
	}
	if to != "" && key > to {
		return false
	}
	return true
}

func sortEntries(entries []models.Entry, order Sort) {
	switch order {
	case SortOldest:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Date.Before(entries[j].Date)
		})
	case SortTitleAsc:
		sort.SliceStable(entries, func(i, j int) bool {
			return strings.ToLower(entries[i].Title) < strings.ToLower(entries[j].Title)
		})
	case SortTitleDesc:
		sort.SliceStable(entries, func(i, j int) bool {
			return strings.ToLower(entries[i].Title) > strings.ToLower(entries[j].Title)
		})
	default: // SortNewest
		sort.SliceStable(entries, func(i, j int) bool {
			if !entries[i].Date.Equal(entries[j].Date) {
				return entries[i].Date.After(entries[j].Date)
			}
			return entries[i].Title < entries[j].Title
		})
	}
}
