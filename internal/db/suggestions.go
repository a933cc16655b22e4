package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AddSuggestions stores chat-derived goal suggestions for a date. A nil
// or empty title list is a no-op.
func (s *Store) AddSuggestions(ctx context.Context, userID, conversationID, date string, titles []string) error {
	if userID == "" {
		return ErrNotSignedIn
	}
	if conversationID == "" || len(titles) == 0 {
		return nil
	}

	now := time.Now().Unix()
	for _, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO suggestions (id, user_id, conversation_id, title, date, source, created_at)
			 VALUES (?, ?, ?, ?, ?, 'chat', ?)`,
			uuid.New().String(), userID, conversationID, title, date, now)
		if err != nil {
			return fmt.Errorf("failed to store suggestion: %w", err)
		}
	}

	s.notify(WatchTopic(userID, date), "suggestion", date, titles)
	return nil
}

// SuggestionsByDate lists a date's suggestions, newest first.
func (s *Store) SuggestionsByDate(ctx context.Context, userID, date string) ([]Suggestion, error) {
	if userID == "" {
		return nil, ErrNotSignedIn
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, conversation_id, title, date, source, created_at
		 FROM suggestions WHERE user_id = ? AND date = ?
		 ORDER BY created_at DESC, rowid DESC`,
		userID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Suggestion
	for rows.Next() {
		var sg Suggestion
		var created int64
		if err := rows.Scan(&sg.ID, &sg.ConversationID, &sg.Title, &sg.Date, &sg.Source, &created); err != nil {
			return nil, err
		}
		sg.CreatedAt = time.Unix(created, 0)
		out = append(out, sg)
	}
	return out, rows.Err()
}
