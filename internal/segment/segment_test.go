package segment

import "testing"

func TestSplit_Basic(t *testing.T) {
	doc := "intro text\n## First\nbody one\n\n### Second\nbody two\n"
	sections := Split(doc)
	if len(sections) != 2 {
		t.Fatalf("len = %d, want 2", len(sections))
	}
	if sections[0].Title != "First" || sections[0].Body != "body one" {
		t.Errorf("section 0 = %+v", sections[0])
	}
	if sections[1].Title != "Second" || sections[1].Body != "body two" {
		t.Errorf("section 1 = %+v", sections[1])
	}
}

func TestSplit_NoHeadings(t *testing.T) {
	if got := Split("just some text\nwithout headings\n"); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestSplit_H1IsNotABoundary(t *testing.T) {
	doc := "# Document title\n## Section\nbody\n"
	sections := Split(doc)
	if len(sections) != 1 {
		t.Fatalf("len = %d, want 1", len(sections))
	}
	if sections[0].Title != "Section" {
		t.Errorf("title = %q", sections[0].Title)
	}
}

func TestSplit_DeepHeadingsAllBoundaries(t *testing.T) {
	doc := "## A\na\n### B\nb\n#### C\nc\n"
	sections := Split(doc)
	if len(sections) != 3 {
		t.Fatalf("len = %d, want 3", len(sections))
	}
	for i, want := range []string{"A", "B", "C"} {
		if sections[i].Title != want {
			t.Errorf("section %d title = %q, want %q", i, sections[i].Title, want)
		}
	}
}

func TestSplit_TrailingHeadingEmptyBody(t *testing.T) {
	sections := Split("## First\nbody\n## Dangling")
	if len(sections) != 2 {
		t.Fatalf("len = %d, want 2", len(sections))
	}
	if sections[1].Title != "Dangling" || sections[1].Body != "" {
		t.Errorf("section 1 = %+v, want empty body", sections[1])
	}
}

func TestSplit_CountMatchesHeadings(t *testing.T) {
	doc := "## one\n\n## two\n\n## three\nx\n"
	if got := Split(doc); len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}
