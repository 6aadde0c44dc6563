package inference

import (
	"reflect"
	"testing"
	"time"
)

func TestInferDate_FilenameWins(t *testing.T) {
	got, ok := InferDate("memory/2024-03-15.md", "notes from March 1, 2024")
	if !ok {
		t.Fatal("expected a date signal")
	}
	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("date = %v, want %v", got, want)
	}
}

func TestInferDate_LongFormInBody(t *testing.T) {
	got, ok := InferDate("MEMORY.md", "Standup notes for march 1, 2024 with the team")
	if !ok {
		t.Fatal("expected a date signal")
	}
	want := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("date = %v, want %v", got, want)
	}
}

func TestInferDate_NoSignal(t *testing.T) {
	if _, ok := InferDate("MEMORY.md", "nothing dated in here"); ok {
		t.Error("expected no date signal")
	}
}

func TestInferDate_OverflowRejected(t *testing.T) {
	if _, ok := InferDate("MEMORY.md", "met on February 30, 2024"); ok {
		t.Error("February 30 should not parse")
	}
}

func TestExtractTags_InlineAndLabelLine(t *testing.T) {
	got := ExtractTags("Notes #project-x #urgent\nTags: Alpha, #beta")
	want := []string{"alpha", "beta", "project-x", "urgent"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tags = %v, want %v", got, want)
	}
}

func TestExtractTags_PipeSeparatedCategories(t *testing.T) {
	got := ExtractTags("category: Work | Personal")
	want := []string{"personal", "work"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tags = %v, want %v", got, want)
	}
}

func TestExtractTags_Dedup(t *testing.T) {
	got := ExtractTags("#go and #Go again\ntags: go")
	want := []string{"go"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tags = %v, want %v", got, want)
	}
}

func TestExtractTags_MidWordHashIgnored(t *testing.T) {
	got := ExtractTags("issue#42 is not a tag but #42 is")
	want := []string{"42"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tags = %v, want %v", got, want)
	}
}

func TestExtractTags_Empty(t *testing.T) {
	if got := ExtractTags("plain text"); len(got) != 0 {
		t.Errorf("tags = %v, want none", got)
	}
}
