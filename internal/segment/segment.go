// Package segment splits raw memory documents into titled sections at
// Markdown heading boundaries.
package segment

import (
	"regexp"
	"strings"
)

// Sections start at headings of two or more '#'. Depth beyond that is not
// distinguished: ## and ### both open a new section.
var headingRe = regexp.MustCompile(`(?m)^##+[ \t]+(.+)$`)

// Section is a (title, body) pair cut from a document.
type Section struct {
	Title string
	Body  string
}

// Split returns the sections of a document in source order. A document
// with no headings yields nil; the caller decides the whole-document
// fallback. A trailing heading with no content after it yields a section
// with an empty body, left for downstream filtering.
func Split(content string) []Section {
	matches := headingRe.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return nil
	}

	out := make([]Section, 0, len(matches))
	for i, m := range matches {
		title := strings.TrimSpace(content[m[2]:m[3]])

		// Body runs from the line after the heading to the next heading
		// (or end of document).
		start := m[1]
		if start < len(content) && content[start] == '\n' {
			start++
		}
		end := len(content)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		body := ""
		if start < end {
			body = strings.TrimSpace(content[start:end])
		}

		out = append(out, Section{Title: title, Body: body})
	}
	return out
}
