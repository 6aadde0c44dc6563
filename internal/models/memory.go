// Package models defines the domain types for Muninn.
package models

import "time"

// SourceType distinguishes the single long-term memory file from the
// date-named daily files.
type SourceType string

const (
	SourceLongTerm SourceType = "long-term"
	SourceDaily    SourceType = "daily"
)

// Entry is the normalized, addressable unit of memory content.
type Entry struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Preview    string     `json:"preview"`
	Tags       []string   `json:"tags"`
	SourceFile string     `json:"sourceFile"`
	SourceType SourceType `json:"sourceType"`
	Date       time.Time  `json:"date"`
	DateLabel  string     `json:"dateLabel"`
}

// Meta summarizes a loaded collection.
type Meta struct {
	Total       int        `json:"total"`
	SourceFiles []string   `json:"sourceFiles"`
	NewestDate  *time.Time `json:"newestDate,omitempty"`
	OldestDate  *time.Time `json:"oldestDate,omitempty"`
}

// LoadResult is the full output of one load pass over the workspace.
type LoadResult struct {
	Entries []Entry `json:"memories"`
	Meta    Meta    `json:"meta"`
}

// DocumentMeta is a lightweight listing record for a workspace file.
type DocumentMeta struct {
	Path      string    `json:"path"`
	UpdatedAt time.Time `json:"updated_at"`
}
