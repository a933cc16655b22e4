package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AddGoal creates a goal for a date. sourceConversationID links goals
// promoted from chat suggestions; it may be empty.
func (s *Store) AddGoal(ctx context.Context, userID, title, date, sourceConversationID string) (*Goal, error) {
	if userID == "" {
		return nil, ErrNotSignedIn
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("goal title is empty")
	}

	now := time.Now()
	g := &Goal{
		ID:                   uuid.New().String(),
		Title:                title,
		Date:                 date,
		SourceConversationID: sourceConversationID,
		CreatedAt:            now,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO goals (id, user_id, title, done, date, source_conversation_id, created_at)
		 VALUES (?, ?, ?, 0, ?, ?, ?)`,
		g.ID, userID, g.Title, g.Date, nullable(g.SourceConversationID), now.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	s.notify(WatchTopic(userID, date), "goal", date, g)
	return g, nil
}

// ToggleGoal sets a goal's done flag.
func (s *Store) ToggleGoal(ctx context.Context, userID, goalID string, done bool) error {
	if userID == "" {
		return ErrNotSignedIn
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE goals SET done = ? WHERE id = ? AND user_id = ?`,
		boolToInt(done), goalID, userID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}

	if g, err := s.getGoal(ctx, userID, goalID); err == nil {
		s.notify(WatchTopic(userID, g.Date), "goal", g.Date, g)
	}
	return nil
}

// DeleteGoal removes a goal.
func (s *Store) DeleteGoal(ctx context.Context, userID, goalID string) error {
	if userID == "" {
		return ErrNotSignedIn
	}
	g, err := s.getGoal(ctx, userID, goalID)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM goals WHERE id = ? AND user_id = ?`, goalID, userID); err != nil {
		return err
	}
	s.notify(WatchTopic(userID, g.Date), "goal", g.Date, nil)
	return nil
}

// GoalsByDate lists a date's goals in creation order.
func (s *Store) GoalsByDate(ctx context.Context, userID, date string) ([]Goal, error) {
	if userID == "" {
		return nil, ErrNotSignedIn
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, done, date, COALESCE(source_conversation_id, ''), created_at
		 FROM goals WHERE user_id = ? AND date = ? ORDER BY created_at ASC, rowid ASC`,
		userID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Goal
	for rows.Next() {
		var g Goal
		var done int
		var created int64
		if err := rows.Scan(&g.ID, &g.Title, &done, &g.Date, &g.SourceConversationID, &created); err != nil {
			return nil, err
		}
		g.Done = done != 0
		g.CreatedAt = time.Unix(created, 0)
		out = append(out, g)
	}
	return out, rows.Err()
}

// GoalStatsForDate counts goals added and completed on a date.
func (s *Store) GoalStatsForDate(ctx context.Context, userID, date string) (GoalStats, error) {
	if userID == "" {
		return GoalStats{}, ErrNotSignedIn
	}
	var stats GoalStats
	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(done), 0) FROM goals WHERE user_id = ? AND date = ?`,
		userID, date)
	if err := row.Scan(&stats.Added, &stats.Completed); err != nil {
		return GoalStats{}, err
	}
	return stats, nil
}

func (s *Store) getGoal(ctx context.Context, userID, goalID string) (*Goal, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, done, date, COALESCE(source_conversation_id, ''), created_at
		 FROM goals WHERE id = ? AND user_id = ?`, goalID, userID)
	var g Goal
	var done int
	var created int64
	if err := row.Scan(&g.ID, &g.Title, &done, &g.Date, &g.SourceConversationID, &created); err != nil {
		return nil, err
	}
	g.Done = done != 0
	g.CreatedAt = time.Unix(created, 0)
	return &g, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
