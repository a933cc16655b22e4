package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EnsureDailyConversation returns the unique conversation for a date,
// creating it if needed. titleHint seeds the title of a new
// conversation (truncated to 60 characters).
func (s *Store) EnsureDailyConversation(ctx context.Context, userID, date, titleHint string) (*Conversation, error) {
	if userID == "" {
		return nil, ErrNotSignedIn
	}

	conv, err := s.GetConversationByDate(ctx, userID, date)
	if err == nil {
		_, err = s.db.ExecContext(ctx,
			`UPDATE conversations SET updated_at = ? WHERE id = ?`,
			time.Now().Unix(), conv.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to touch conversation: %w", err)
		}
		return conv, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	title := strings.TrimSpace(titleHint)
	if r := []rune(title); len(r) > 60 {
		title = string(r[:60])
	}
	if title == "" {
		title = "Journal for " + date
	}

	now := time.Now()
	id := uuid.New().String()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO conversations (id, user_id, date, title, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, userID, date, title, now.Unix(), now.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	return &Conversation{
		ID:        id,
		UserID:    userID,
		Date:      date,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetConversationByDate returns the conversation for a date, or
// sql.ErrNoRows when none exists yet.
func (s *Store) GetConversationByDate(ctx context.Context, userID, date string) (*Conversation, error) {
	if userID == "" {
		return nil, ErrNotSignedIn
	}
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, date, title, COALESCE(mood, ''), created_at, updated_at
		 FROM conversations WHERE user_id = ? AND date = ? LIMIT 1`,
		userID, date)

	var c Conversation
	var created, updated int64
	if err := row.Scan(&c.ID, &c.UserID, &c.Date, &c.Title, &c.Mood, &created, &updated); err != nil {
		return nil, err
	}
	c.CreatedAt = time.Unix(created, 0)
	c.UpdatedAt = time.Unix(updated, 0)
	return &c, nil
}

// SetMood records the mood tag on a date's conversation, creating the
// conversation lazily the way a first message would.
func (s *Store) SetMood(ctx context.Context, userID, date, mood string) error {
	conv, err := s.EnsureDailyConversation(ctx, userID, date, "Mood: "+mood)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE conversations SET mood = ?, updated_at = ? WHERE id = ?`,
		mood, time.Now().Unix(), conv.ID)
	if err != nil {
		return fmt.Errorf("failed to set mood: %w", err)
	}
	return nil
}

// RecentDates returns distinct journal dates, newest first.
func (s *Store) RecentDates(ctx context.Context, userID string, limit int) ([]string, error) {
	if userID == "" {
		return nil, ErrNotSignedIn
	}
	if limit <= 0 {
		limit = 90
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT date FROM conversations WHERE user_id = ? ORDER BY date DESC LIMIT ?`,
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// AppendMessage appends one message to a conversation and returns the
// stored row with its assigned sequence number.
func (s *Store) AppendMessage(ctx context.Context, conversationID, role, content string) (*Message, error) {
	now := time.Now()
	id := uuid.New().String()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (id, conversation_id, role, content, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		id, conversationID, role, content, now.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to append message: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	_, _ = s.db.ExecContext(ctx,
		`UPDATE conversations SET updated_at = ? WHERE id = ?`, now.Unix(), conversationID)

	return &Message{
		Seq:            seq,
		ID:             id,
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
		CreatedAt:      now,
	}, nil
}

// Messages returns all messages of a conversation in insertion order.
func (s *Store) Messages(ctx context.Context, conversationID string) ([]Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, id, conversation_id, role, content, created_at
		 FROM messages WHERE conversation_id = ? ORDER BY seq ASC`,
		conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

// MessagesForDate returns the full transcript for a date in insertion
// order, or an empty slice when no conversation exists.
func (s *Store) MessagesForDate(ctx context.Context, userID, date string) ([]Message, error) {
	conv, err := s.GetConversationByDate(ctx, userID, date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s.Messages(ctx, conv.ID)
}

func scanMessages(rows *sql.Rows) ([]Message, error) {
	var out []Message
	for rows.Next() {
		var m Message
		var created int64
		if err := rows.Scan(&m.Seq, &m.ID, &m.ConversationID, &m.Role, &m.Content, &created); err != nil {
			return nil, err
		}
		m.CreatedAt = time.Unix(created, 0)
		out = append(out, m)
	}
	return out, rows.Err()
}
