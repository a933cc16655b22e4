// Package types defines the request/response DTOs of the HTTP API.
package types

import (
	"github.com/daybookhq/daybook/internal/db"
	"github.com/daybookhq/daybook/internal/guide"
)

// SendTurnRequest is one user chat turn. Date defaults to today.
type SendTurnRequest struct {
	Date       string `json:"date,omitempty"`
	Text       string `json:"text"`
	ExerciseID string `json:"exercise_id,omitempty"` // start/switch signal
}

// SendTurnResponse carries the emitted assistant messages and the
// updated session state.
type SendTurnResponse struct {
	Date     string       `json:"date"`
	State    guide.State  `json:"state"`
	Messages []db.Message `json:"messages"`
}

// HistoryResponse is a date's transcript in replay order.
type HistoryResponse struct {
	Date     string       `json:"date"`
	Mood     string       `json:"mood,omitempty"`
	Messages []db.Message `json:"messages"`
}

// AddGoalRequest creates a goal for a date.
type AddGoalRequest struct {
	Title                string `json:"title"`
	Date                 string `json:"date,omitempty"`
	SourceConversationID string `json:"source_conversation_id,omitempty"`
}

// ToggleGoalRequest flips a goal's done flag.
type ToggleGoalRequest struct {
	Done bool `json:"done"`
}

// GoalListResponse is a date's goals plus stats.
type GoalListResponse struct {
	Date  string       `json:"date"`
	Goals []db.Goal    `json:"goals"`
	Stats db.GoalStats `json:"stats"`
}

// SuggestionListResponse is a date's chat-derived suggestions plus the
// static mood-keyed ideas not already on the goal list.
type SuggestionListResponse struct {
	Date        string          `json:"date"`
	Suggestions []db.Suggestion `json:"suggestions"`
	Static      []string        `json:"static"`
}

// SetMoodRequest tags a date's conversation with a mood.
type SetMoodRequest struct {
	Date string `json:"date,omitempty"`
	Mood string `json:"mood"`
}

// DaysResponse lists recent journal dates, newest first.
type DaysResponse struct {
	Dates []string `json:"dates"`
}
