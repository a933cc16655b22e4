package goals

import (
	"testing"
)

func TestSuggestedIncludesMoodExtras(t *testing.T) {
	got := Suggested("down", nil)

	found := false
	for _, s := range got {
		if s == "Step outside for fresh air" {
			found = true
		}
	}
	if !found {
		t.Errorf("Suggested(down) missing mood extra: %v", got)
	}
	if len(got) != len(baseSuggestions)+len(moodSuggestions["down"]) {
		t.Errorf("Suggested(down) returned %d items, want %d", len(got), len(baseSuggestions)+2)
	}
}

func TestSuggestedUnknownMoodFallsBackToBase(t *testing.T) {
	got := Suggested("bewildered", nil)
	if len(got) != len(baseSuggestions) {
		t.Errorf("Suggested(unknown) = %v, want base list only", got)
	}
}

func TestSuggestedSkipsExistingTitles(t *testing.T) {
	got := Suggested("", []string{"10-minute walk", "  tidy ONE area "})
	for _, s := range got {
		if s == "10-minute walk" || s == "Tidy one area" {
			t.Errorf("Suggested returned already-present title %q", s)
		}
	}
}
