package goals

import "strings"

// baseSuggestions are always offered.
var baseSuggestions = []string{
	"Gratitude journal (3 items)",
	"10-minute walk",
	"Hydrate (8 glasses)",
	"5-minute breathing",
	"Tidy one area",
}

// moodSuggestions adds mood-specific ideas.
var moodSuggestions = map[string][]string{
	"down":       {"Step outside for fresh air", "Make a cup of tea"},
	"struggling": {"Write 1 worry and 1 action"},
	"great":      {"Plan one fun activity", "Reach out to a friend"},
	"good":       {"15-minute exercise"},
}

// Suggested returns static goal suggestions for the given mood, skipping
// titles already present in existing (case-insensitive).
func Suggested(mood string, existing []string) []string {
	combined := append([]string{}, baseSuggestions...)
	if extra, ok := moodSuggestions[strings.ToLower(strings.TrimSpace(mood))]; ok {
		combined = append(combined, extra...)
	}

	have := make(map[string]bool, len(existing))
	for _, t := range existing {
		have[strings.ToLower(strings.TrimSpace(t))] = true
	}

	var out []string
	for _, title := range combined {
		if !have[strings.ToLower(strings.TrimSpace(title))] {
			out = append(out, title)
		}
	}
	return out
}
