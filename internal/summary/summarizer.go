// Package summary maintains the per-date digest: a quick best-effort
// update after each chat turn and a full end-of-day summarization pass
// over the transcript.
package summary

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/daybookhq/daybook/internal/ai"
	"github.com/daybookhq/daybook/internal/db"
	"github.com/daybookhq/daybook/internal/topics"
)

const (
	// Model-input context is built from user turns only: the trailing
	// boilerplate of guided flows confuses the summarizer.
	contextTurns   = 12
	contextMaxLen  = 8000
	contextDivider = "\n---\n"

	maxTopics = 8

	placeholderSummary = "Summary not available yet."
)

const systemPrompt = `You are a concise journaling summarizer.

Task:
- Given the user's day context, produce:
  1) A 2-4 sentence plain-English summary (no formatting).
  2) 5-8 comma-separated topics/keywords.

Rules:
- No bullet points or emojis in the summary.
- Neutral, specific, helpful tone.
- Do not mention "assistant" or "user".

Output (strict JSON only):
{
  "summary": string,
  "topics": string[]
}`

// Summarizer regenerates the full daily digest on demand.
type Summarizer struct {
	store    *db.Store
	provider ai.Provider
}

// New creates a Summarizer.
func New(store *db.Store, provider ai.Provider) *Summarizer {
	return &Summarizer{store: store, provider: provider}
}

// Summarize builds and persists the digest for a date. It is
// idempotent: goal counts and mood are always recomputed fresh, and
// topics/summary are overwritten. Errors from the LLM call or the
// store propagate to the caller.
func (s *Summarizer) Summarize(ctx context.Context, userID, date string) (*db.DailySummary, error) {
	messages, err := s.store.MessagesForDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	// No transcript: still record stats and mood with an empty digest.
	if len(messages) == 0 {
		return s.persist(ctx, userID, date, nil, "")
	}

	userContext := buildUserContext(messages, contextTurns)
	if userContext == "" {
		userContext = "No user messages were recorded for this date."
	}

	reply, err := s.provider.Complete(ctx, &ai.ChatRequest{
		Messages: []ai.Message{
			{Role: ai.RoleSystem, Content: systemPrompt},
			{Role: ai.RoleUser, Content: strings.Join([]string{
				"Here is the day context from user messages only (most recent last):",
				"---",
				userContext,
				"---",
				`Return only JSON with keys "summary" and "topics".`,
			}, "\n")},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("day summarization failed: %w", err)
	}

	summaryText, topicList := parseReply(reply.Text)

	// Harden against an empty or throwaway summary.
	if len(strings.TrimSpace(summaryText)) < 8 {
		summaryText = summaryFromLastUserTurns(messages)
	}
	if summaryText == "" {
		summaryText = placeholderSummary
	}

	return s.persist(ctx, userID, date, topicList, summaryText)
}

// persist merges fresh goal counts and mood with the given topics and
// summary text.
func (s *Summarizer) persist(ctx context.Context, userID, date string, topicList []string, summaryText string) (*db.DailySummary, error) {
	stats, err := s.store.GoalStatsForDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	mood := ""
	conv, err := s.store.GetConversationByDate(ctx, userID, date)
	if err == nil {
		mood = conv.Mood
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	if topicList == nil {
		topicList = []string{}
	}
	sum := &db.DailySummary{
		Date:           date,
		Mood:           mood,
		GoalsAdded:     stats.Added,
		GoalsCompleted: stats.Completed,
		Topics:         topicList,
		Summary:        summaryText,
	}
	if err := s.store.UpsertDailySummary(ctx, userID, sum); err != nil {
		return nil, err
	}
	return sum, nil
}

// buildUserContext joins the trailing user turns with a delimiter,
// capped to keep the payload small.
func buildUserContext(messages []db.Message, limit int) string {
	var userTexts []string
	for _, m := range messages {
		if m.Role != db.RoleUser {
			continue
		}
		if t := strings.TrimSpace(m.Content); t != "" {
			userTexts = append(userTexts, t)
		}
	}
	if len(userTexts) > limit {
		userTexts = userTexts[len(userTexts)-limit:]
	}
	if len(userTexts) == 0 {
		return ""
	}
	return topics.Truncate(strings.Join(userTexts, contextDivider), contextMaxLen)
}

// parseReply extracts summary and topics from the model reply:
// structured JSON when possible, heuristic extraction otherwise.
func parseReply(reply string) (string, []string) {
	block := extractJSONBlock(reply)
	if block != "" {
		var parsed struct {
			Summary string   `json:"summary"`
			Topics  []string `json:"topics"`
		}
		if err := json.Unmarshal([]byte(block), &parsed); err == nil {
			summaryText := strings.TrimSpace(parsed.Summary)
			var topicList []string
			for _, t := range parsed.Topics {
				if t = strings.TrimSpace(t); t != "" {
					topicList = append(topicList, t)
				}
				if len(topicList) >= maxTopics {
					break
				}
			}
			if summaryText != "" || len(topicList) > 0 {
				return summaryText, topicList
			}
		}
	}

	// Fallback: heuristic sentence and keyword extraction over the raw
	// reply text.
	res := topics.Full(reply)
	return res.Summary, res.Topics
}

// extractJSONBlock returns the substring between the first '{' and the
// last '}', or "".
func extractJSONBlock(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}

// summaryFromLastUserTurns derives a summary seed from the last one or
// two user messages (up to 2 sentences, capped at 400 characters).
func summaryFromLastUserTurns(messages []db.Message) string {
	var userTexts []string
	for _, m := range messages {
		if m.Role == db.RoleUser {
			userTexts = append(userTexts, m.Content)
		}
	}
	if len(userTexts) == 0 {
		return ""
	}

	var parts []string
	if len(userTexts) >= 2 {
		parts = append(parts, userTexts[len(userTexts)-1], userTexts[len(userTexts)-2])
	} else {
		parts = append(parts, userTexts[0])
	}
	seed := strings.TrimSpace(strings.Join(parts, " "))
	if seed == "" {
		return ""
	}

	sentences := topics.SplitSentences(seed)
	if len(sentences) > 2 {
		sentences = sentences[:2]
	}
	return topics.Truncate(strings.Join(sentences, " "), 400)
}
