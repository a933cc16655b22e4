package goals

import "strings"

const (
	// Assistant replies place micro-goals at the end by convention, so
	// only the trailing lines are considered.
	tailWindow = 8
	maxGoals   = 5
)

// FromReply scans an assistant reply for micro-goal phrases. The result
// is deduplicated case-insensitively in first-seen order and capped at 5.
func FromReply(reply string) []string {
	var lines []string
	for _, l := range strings.Split(reply, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) > tailWindow {
		lines = lines[len(lines)-tailWindow:]
	}

	var candidates []string
	for _, l := range lines {
		if kept, ok := Keep(l); ok {
			candidates = append(candidates, kept)
		}
	}
	return dedupe(candidates, maxGoals)
}

// dedupe removes case-insensitive duplicates, preserving first-seen
// order, and caps the result.
func dedupe(titles []string, cap int) []string {
	seen := make(map[string]bool, len(titles))
	var out []string
	for _, t := range titles {
		k := strings.ToLower(t)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, t)
		if len(out) >= cap {
			break
		}
	}
	return out
}
