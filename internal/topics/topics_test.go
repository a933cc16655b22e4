package topics

import (
	"reflect"
	"strings"
	"testing"
)

func TestQuickCapsTopicsAndSummary(t *testing.T) {
	text := "Work stress again. Deadline panic at work. Sleep was bad. " +
		"Coffee helped a little. Walking cleared my head. Work work work."

	res := Quick(text)
	if len(res.Topics) > 6 {
		t.Errorf("Quick returned %d topics, want <= 6", len(res.Topics))
	}
	if res.Topics[0] != "work" {
		t.Errorf("most frequent token should lead: %v", res.Topics)
	}
	if len([]rune(res.Summary)) > 220 {
		t.Errorf("Quick summary is %d runes, want <= 220", len([]rune(res.Summary)))
	}
}

func TestQuickSummaryKeepsLastSentences(t *testing.T) {
	res := Quick("First thing happened. Second thing happened. Third thing happened.")
	want := "Second thing happened. Third thing happened."
	if res.Summary != want {
		t.Errorf("Quick summary = %q, want %q", res.Summary, want)
	}
}

func TestFullSummaryKeepsLeadingSentences(t *testing.T) {
	res := Full("One. Two. Three. Four. Five. Six.")
	want := "One. Two. Three. Four."
	if res.Summary != want {
		t.Errorf("Full summary = %q, want %q", res.Summary, want)
	}
	if cap := 8; len(res.Topics) > cap {
		t.Errorf("Full returned %d topics, want <= %d", len(res.Topics), cap)
	}
}

func TestTopTokensStableTieOrder(t *testing.T) {
	// Every token appears once; ties must keep first-seen order.
	got := topTokens("zebra apple mango", 8)
	want := []string{"zebra", "apple", "mango"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("topTokens tie order = %v, want %v", got, want)
	}
}

func TestTopTokensSkipsStopWordsAndShortTokens(t *testing.T) {
	got := topTokens("the and for with that cat dog sleeping", 8)
	for _, w := range got {
		if stopWords[w] || len(w) <= 3 {
			t.Errorf("topTokens leaked %q", w)
		}
	}
	if !reflect.DeepEqual(got, []string{"sleeping"}) {
		t.Errorf("topTokens = %v, want [sleeping]", got)
	}
}

func TestCondenseFallsBackWithoutPunctuation(t *testing.T) {
	text := "no punctuation here just a plain run of words about gardening"
	res := Quick(text)
	if res.Summary != text {
		t.Errorf("Quick without punctuation = %q, want whole text", res.Summary)
	}
}

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("Hello there! How was it? Fine. Trailing bit")
	want := []string{"Hello there!", "How was it?", "Fine.", "Trailing bit"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitSentences = %v, want %v", got, want)
	}
}

func TestSplitSentencesIgnoresDecimalPoints(t *testing.T) {
	got := SplitSentences("Ran 3.5 km today. Felt good.")
	want := []string{"Ran 3.5 km today.", "Felt good."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitSentences = %v, want %v", got, want)
	}
}

func TestTruncateRuneSafe(t *testing.T) {
	s := strings.Repeat("é", 10)
	if got := Truncate(s, 4); got != strings.Repeat("é", 4) {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("short", 220); got != "short" {
		t.Errorf("Truncate should not pad: %q", got)
	}
}
