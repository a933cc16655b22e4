// Package goals extracts short, actionable micro-goal phrases from
// assistant replies and validates user-facing goal suggestions.
package goals

import (
	"regexp"
	"strings"
)

// startVerbs is the accepted opening vocabulary for a micro-goal phrase.
// Hand-curated and English-only; there is no i18n contract here.
var startVerbs = []string{
	"walk", "drink", "write", "text", "call", "stretch", "breathe", "tidy",
	"plan", "read", "meditate", "journal", "hydrate", "email", "organize",
	"prep", "cook", "clean", "sort", "file", "review", "water", "wash",
	"message", "note", "list", "step", "sit", "stand",
}

var (
	bulletPrefix = regexp.MustCompile(`^[-*•\s]+`)
	minutePrefix = regexp.MustCompile(`(?i)^[0-9]+(-| )?minute(s)?\b`)
	minPrefix    = regexp.MustCompile(`(?i)^[0-9]+(-| )?min\b`)
	// Single bare words that pass the verb check but are too vague to be
	// actionable on their own.
	vagueBareWord = regexp.MustCompile(`(?i)^(breathe|hydrate|journal|walk|stretch|meditate|clean|plan|read)$`)
)

// Keep validates and normalizes one raw line into a micro-goal phrase.
// It returns the cleaned phrase and true when the line qualifies.
func Keep(raw string) (string, bool) {
	t := strings.TrimSpace(bulletPrefix.ReplaceAllString(raw, ""))
	if t == "" {
		return "", false
	}

	words := len(strings.Fields(t))
	if words < 2 || words > 9 {
		return "", false
	}

	if r := []rune(t); len(r) > 80 {
		t = strings.TrimSpace(string(r[:77])) + "…"
	}

	lower := strings.ToLower(t)
	ok := false
	for _, v := range startVerbs {
		if strings.HasPrefix(lower, v+" ") {
			ok = true
			break
		}
	}
	if !ok && (minutePrefix.MatchString(lower) || minPrefix.MatchString(lower)) {
		ok = true
	}
	if !ok {
		return "", false
	}

	if vagueBareWord.MatchString(t) {
		return "", false
	}
	return t, true
}
