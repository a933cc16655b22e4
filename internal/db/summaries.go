package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// UpsertDailySummary writes the digest for a date, overwriting prior
// topics/summary. Counts and mood are expected to be freshly computed
// by the caller.
func (s *Store) UpsertDailySummary(ctx context.Context, userID string, sum *DailySummary) error {
	if userID == "" {
		return ErrNotSignedIn
	}
	topics := sum.Topics
	if topics == nil {
		topics = []string{}
	}
	topicsJSON, err := json.Marshal(topics)
	if err != nil {
		return fmt.Errorf("failed to encode topics: %w", err)
	}

	now := time.Now()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO summaries (user_id, date, mood, goals_added, goals_completed, topics, summary, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, date) DO UPDATE SET
		   mood = excluded.mood,
		   goals_added = excluded.goals_added,
		   goals_completed = excluded.goals_completed,
		   topics = excluded.topics,
		   summary = excluded.summary,
		   updated_at = excluded.updated_at`,
		userID, sum.Date, nullable(sum.Mood), sum.GoalsAdded, sum.GoalsCompleted,
		string(topicsJSON), sum.Summary, now.Unix())
	if err != nil {
		return fmt.Errorf("failed to upsert summary: %w", err)
	}
	sum.UpdatedAt = now

	s.notify(WatchTopic(userID, sum.Date), "summary", sum.Date, sum)
	return nil
}

// GetDailySummary returns the digest for a date, or sql.ErrNoRows.
func (s *Store) GetDailySummary(ctx context.Context, userID, date string) (*DailySummary, error) {
	if userID == "" {
		return nil, ErrNotSignedIn
	}
	row := s.db.QueryRowContext(ctx,
		`SELECT date, COALESCE(mood, ''), goals_added, goals_completed, topics, summary, updated_at
		 FROM summaries WHERE user_id = ? AND date = ?`, userID, date)
	return scanSummary(row)
}

// RecentSummaries lists summaries, newest date first.
func (s *Store) RecentSummaries(ctx context.Context, userID string, limit int) ([]DailySummary, error) {
	if userID == "" {
		return nil, ErrNotSignedIn
	}
	if limit <= 0 {
		limit = 60
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, COALESCE(mood, ''), goals_added, goals_completed, topics, summary, updated_at
		 FROM summaries WHERE user_id = ? ORDER BY date DESC LIMIT ?`,
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DailySummary
	for rows.Next() {
		sum, err := scanSummaryRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *sum)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSummary(row *sql.Row) (*DailySummary, error) {
	return scanSummaryFrom(row)
}

func scanSummaryRows(rows *sql.Rows) (*DailySummary, error) {
	return scanSummaryFrom(rows)
}

func scanSummaryFrom(row rowScanner) (*DailySummary, error) {
	var sum DailySummary
	var topicsJSON string
	var updated int64
	if err := row.Scan(&sum.Date, &sum.Mood, &sum.GoalsAdded, &sum.GoalsCompleted,
		&topicsJSON, &sum.Summary, &updated); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(topicsJSON), &sum.Topics); err != nil {
		sum.Topics = []string{}
	}
	if sum.Topics == nil {
		sum.Topics = []string{}
	}
	sum.UpdatedAt = time.Unix(updated, 0)
	return &sum, nil
}
