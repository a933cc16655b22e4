// Package topics derives keyword topics and a short narrative summary
// from free text. Two entry points share one tokenization strategy:
// Quick feeds the per-message daily summary update, Full backs the
// end-of-day summarizer's heuristic fallback.
package topics

import (
	"regexp"
	"sort"
	"strings"
)

// stopWords are common English function words excluded from topic
// counting. Hand-curated, English-only.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "from": true, "your": true, "about": true, "into": true,
	"later": true, "after": true, "before": true, "today": true, "also": true,
	"just": true, "you": true, "i": true, "we": true, "me": true, "my": true,
	"our": true, "but": true, "not": true, "are": true, "was": true,
	"were": true, "been": true, "will": true, "shall": true, "can": true,
	"could": true, "would": true, "should": true, "a": true, "an": true,
	"to": true, "in": true, "on": true, "of": true, "at": true, "it": true,
	"is": true, "as": true,
}

var (
	wordSplit  = regexp.MustCompile(`[^a-z0-9]+`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Result holds extracted topics and a condensed summary.
type Result struct {
	Topics  []string
	Summary string
}

// Quick extracts up to 6 topics and a trailing-sentence summary capped
// at 220 characters. Used for the incremental per-message update.
func Quick(text string) Result {
	return Result{
		Topics:  topTokens(text, 6),
		Summary: condenseTail(text, 2, 220),
	}
}

// Full extracts up to 8 topics and a leading-sentence summary capped at
// 600 characters. Used as the fallback when the model's structured
// output cannot be parsed.
func Full(text string) Result {
	return Result{
		Topics:  topTokens(text, 8),
		Summary: condenseHead(text, 4, 600),
	}
}

// topTokens builds a frequency table over non-stopword tokens longer
// than 3 characters and returns the top n by descending frequency.
// The sort is stable so ties keep first-seen order.
func topTokens(text string, n int) []string {
	clean := strings.ToLower(strings.TrimSpace(whitespace.ReplaceAllString(text, " ")))

	freq := make(map[string]int)
	var order []string
	for _, w := range wordSplit.Split(clean, -1) {
		if len(w) <= 3 || stopWords[w] {
			continue
		}
		if freq[w] == 0 {
			order = append(order, w)
		}
		freq[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}

// SplitSentences splits text on ./!/? boundaries followed by
// whitespace, trimming each piece and dropping blanks.
func SplitSentences(text string) []string {
	var out []string
	var b strings.Builder
	runes := []rune(text)
	for i, r := range runes {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if i+1 >= len(runes) || runes[i+1] == ' ' || runes[i+1] == '\n' || runes[i+1] == '\t' {
				if s := strings.TrimSpace(b.String()); s != "" {
					out = append(out, s)
				}
				b.Reset()
			}
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		out = append(out, s)
	}
	return out
}

// condenseTail keeps the last n sentences, falling back to the whole
// cleaned text when sentence splitting yields nothing.
func condenseTail(text string, n, maxLen int) string {
	sentences := SplitSentences(text)
	var picked string
	if len(sentences) > n {
		picked = strings.Join(sentences[len(sentences)-n:], " ")
	} else {
		picked = strings.Join(sentences, " ")
	}
	if picked == "" {
		picked = strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
	}
	return Truncate(picked, maxLen)
}

// condenseHead keeps the first n sentences.
func condenseHead(text string, n, maxLen int) string {
	sentences := SplitSentences(text)
	if len(sentences) > n {
		sentences = sentences[:n]
	}
	picked := strings.Join(sentences, " ")
	if picked == "" {
		picked = strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
	}
	return Truncate(picked, maxLen)
}

// Truncate caps s at maxLen runes.
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen])
}
