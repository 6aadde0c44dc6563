package query

import (
	"testing"
	"time"

	"github.com/torvik/muninn/internal/models"
)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func fixture() []models.Entry {
	return []models.Entry{
		{ID: "1", Title: "Sprint review", Content: "shipped the widget", Tags: []string{"work"}, SourceFile: "memory/2024-03-15.md", Date: day(15)},
		{ID: "2", Title: "Garden notes", Content: "tomatoes need water", Tags: []string{"home"}, SourceFile: "memory/2024-03-10.md", Date: day(10)},
		{ID: "3", Title: "Architecture ideas", Content: "split the loader", Tags: []string{"work", "design"}, SourceFile: "MEMORY.md", Date: day(1)},
	}
}

func ids(entries []models.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestRun_NoCriteriaReturnsAllNewestFirst(t *testing.T) {
	got := ids(Run(fixture(), Criteria{}))
	want := []string{"1", "2", "3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestRun_TextMatchesTagsAndSource(t *testing.T) {
	if got := Run(fixture(), Criteria{Text: "design"}); len(got) != 1 || got[0].ID != "3" {
		t.Errorf("tag match = %v", ids(got))
	}
	if got := Run(fixture(), Criteria{Text: "2024-03-10"}); len(got) != 1 || got[0].ID != "2" {
		t.Errorf("sourceFile match = %v", ids(got))
	}
	if got := Run(fixture(), Criteria{Text: "SHIPPED"}); len(got) != 1 || got[0].ID != "1" {
		t.Errorf("case-insensitive content match = %v", ids(got))
	}
}

func TestRun_NoHitsRegardlessOfOtherCriteria(t *testing.T) {
	got := Run(fixture(), Criteria{Text: "zzz-no-such", SourceFile: "MEMORY.md", Sort: SortTitleAsc})
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", ids(got))
	}
}

func TestRun_SourceFilter(t *testing.T) {
	if got := Run(fixture(), Criteria{SourceFile: "MEMORY.md"}); len(got) != 1 || got[0].ID != "3" {
		t.Errorf("got %v", ids(got))
	}
	if got := Run(fixture(), Criteria{SourceFile: SourceAll}); len(got) != 3 {
		t.Errorf("sentinel should not restrict, got %v", ids(got))
	}
}

func TestRun_DateRange(t *testing.T) {
	got := Run(fixture(), Criteria{From: "2024-03-05", To: "2024-03-12"})
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("got %v", ids(got))
	}
	// Inclusive bounds.
	got = Run(fixture(), Criteria{From: "2024-03-10", To: "2024-03-15"})
	if len(got) != 2 {
		t.Errorf("inclusive range got %v", ids(got))
	}
	// Source-file date wins over entry date for the key.
	entries := fixture()
	entries[1].Date = day(25)
	got = Run(entries, Criteria{From: "2024-03-10", To: "2024-03-10"})
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("filename key should win, got %v", ids(got))
	}
}

func TestRun_InvertedRangeEmpty(t *testing.T) {
	if got := Run(fixture(), Criteria{From: "2024-03-20", To: "2024-03-01"}); len(got) != 0 {
		t.Errorf("from > to should match nothing, got %v", ids(got))
	}
}

func TestRun_KeylessEntryFailsActiveBound(t *testing.T) {
	entries := []models.Entry{{ID: "x", Title: "t", Content: "c", SourceFile: "MEMORY.md"}}
	if got := Run(entries, Criteria{From: "2000-01-01"}); len(got) != 0 {
		t.Errorf("keyless entry should fail active bound, got %v", ids(got))
	}
	if got := Run(entries, Criteria{}); len(got) != 1 {
		t.Error("keyless entry should pass with no bounds")
	}
}

func TestRun_SortOrders(t *testing.T) {
	if got := ids(Run(fixture(), Criteria{Sort: SortOldest})); got[0] != "3" || got[2] != "1" {
		t.Errorf("oldest = %v", got)
	}
	if got := ids(Run(fixture(), Criteria{Sort: SortTitleAsc})); got[0] != "3" || got[1] != "2" || got[2] != "1" {
		t.Errorf("title asc = %v", got)
	}
	if got := ids(Run(fixture(), Criteria{Sort: SortTitleDesc})); got[0] != "1" || got[2] != "3" {
		t.Errorf("title desc = %v", got)
	}
}

func TestRun_TitleSortStable(t *testing.T) {
	entries := []models.Entry{
		{ID: "a", Title: "Same", Date: day(1)},
		{ID: "b", Title: "Same", Date: day(2)},
		{ID: "c", Title: "Same", Date: day(3)},
	}
	first := ids(Run(entries, Criteria{Sort: SortTitleAsc}))
	second := ids(Run(Run(entries, Criteria{Sort: SortTitleAsc}), Criteria{Sort: SortTitleAsc}))
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("sort not stable: %v vs %v", first, second)
		}
	}
}

func TestRun_DoesNotMutateInput(t *testing.T) {
	entries := fixture()
	_ = Run(entries, Criteria{Sort: SortTitleDesc})
	if entries[0].ID != "1" || entries[2].ID != "3" {
		t.Errorf("input mutated: %v", ids(entries))
	}
}
