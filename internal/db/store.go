// Package db persists conversations, messages, goals, suggestions and
// daily summaries in SQLite. All rows are scoped to a user id; any
// operation without one fails fast with ErrNotSignedIn.
package db

import (
	"database/sql"
	"errors"
	"time"

	"github.com/daybookhq/daybook/internal/events"
)

// ErrNotSignedIn is returned by every store operation called without an
// authenticated identity.
var ErrNotSignedIn = errors.New("not signed in")

// Message roles as stored.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Conversation is the single per-date container of chat messages.
type Conversation struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Title     string    `json:"title"`
	Mood      string    `json:"mood,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message is one chat turn. Seq defines replay order.
type Message struct {
	Seq            int64     `json:"seq"`
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

// Goal is a user-visible task item.
type Goal struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Done                 bool      `json:"done"`
	Date                 string    `json:"date"`
	SourceConversationID string    `json:"source_conversation_id,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

// Suggestion is a chat-derived micro-goal suggestion.
type Suggestion struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Title          string    `json:"title"`
	Date           string    `json:"date"`
	Source         string    `json:"source"`
	CreatedAt      time.Time `json:"created_at"`
}

// DailySummary is the derived per-date digest.
type DailySummary struct {
	Date           string    `json:"date"`
	Mood           string    `json:"mood,omitempty"`
	GoalsAdded     int       `json:"goals_added"`
	GoalsCompleted int       `json:"goals_completed"`
	Topics         []string  `json:"topics"`
	Summary        string    `json:"summary"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// GoalStats are the per-date goal counts.
type GoalStats struct {
	Added     int `json:"added"`
	Completed int `json:"completed"`
}

// Store wraps the single shared database connection.
type Store struct {
	db      *sql.DB
	subject *events.Subject
}

// NewStore creates a Store over an open connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// SetNotifier attaches a pub/sub subject; goal, suggestion and summary
// writes publish change events to it.
func (s *Store) SetNotifier(subject *events.Subject) {
	s.subject = subject
}

// DB exposes the underlying connection for sharing with other components.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ToDateISO formats a time as the store's YYYY-MM-DD date key.
func ToDateISO(t time.Time) string {
	return t.Format("2006-01-02")
}

func (s *Store) notify(topic, kind, date string, payload any) {
	if s.subject != nil {
		s.subject.Publish(events.Event{Topic: topic, Kind: kind, Date: date, Payload: payload})
	}
}

// WatchTopic is the event topic for a user's changes on one date.
func WatchTopic(userID, date string) string {
	return userID + "/" + date
}
