// Package inference derives dates and tags for memory documents from
// filename conventions, heading content, and inline markup.
package inference

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	filenameDateRe = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
	longFormDateRe = regexp.MustCompile(`(?i)\b(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{1,2}),\s+(\d{4})`)

	hashtagRe = regexp.MustCompile(`(?:^|\s)#([A-Za-z0-9_-]+)`)
	labelRe   = regexp.MustCompile(`(?im)^[ \t]*(?:tags?|categor(?:y|ies))[ \t]*:[ \t]*(.+)$`)
)

var monthsByName = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// InferDate returns the best available date for a document or section.
// A YYYY-MM-DD substring in the source identifier wins; otherwise a
// long-form "Month day, year" anywhere in the text is used. Both resolve
// to midnight UTC. The second return is false when neither signal is
// present; the caller owns the fallback (document date or injected clock).
func InferDate(source, text string) (time.Time, bool) {
	if m := filenameDateRe.FindStringSubmatch(source); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if d.Year() == year && int(d.Month()) == month && d.Day() == day {
			return d, true
		}
	}

	if m := longFormDateRe.FindStringSubmatch(text); m != nil {
		month := monthsByName[strings.ToLower(m[1])]
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		// Reject overflowed dates like "February 30".
		if d.Month() == month && d.Day() == day {
			return d, true
		}
	}

	return time.Time{}, false
}

// ExtractTags collects lowercase tags from inline #hashtags and from
// "tags:"/"categories:" label lines. The result is deduplicated and
// sorted; order carries no meaning.
func ExtractTags(text string) []string {
	seen := make(map[string]struct{})

	for _, m := range hashtagRe.FindAllStringSubmatch(text, -1) {
		seen[strings.ToLower(m[1])] = struct{}{}
	}

	if m := labelRe.FindStringSubmatch(text); m != nil {
		for _, piece := range strings.FieldsFunc(m[1], func(r rune) bool {
			return r == '|' || r == ','
		}) {
			tag := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(piece), "#"))
			if tag != "" {
				seen[tag] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
