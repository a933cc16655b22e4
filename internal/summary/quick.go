package summary

import (
	"context"
	"database/sql"
	"errors"

	"github.com/daybookhq/daybook/internal/db"
	"github.com/daybookhq/daybook/internal/topics"
)

// QuickUpdate refreshes the daily digest from one assistant reply:
// topic/summary heuristics over the reply text plus fresh goal counts
// and mood. Callers treat it as best-effort; a failure here must never
// block the chat reply that triggered it.
func QuickUpdate(ctx context.Context, store *db.Store, userID, date, replyText string) error {
	res := topics.Quick(replyText)

	stats, err := store.GoalStatsForDate(ctx, userID, date)
	if err != nil {
		return err
	}

	mood := ""
	conv, err := store.GetConversationByDate(ctx, userID, date)
	if err == nil {
		mood = conv.Mood
	} else if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	return store.UpsertDailySummary(ctx, userID, &db.DailySummary{
		Date:           date,
		Mood:           mood,
		GoalsAdded:     stats.Added,
		GoalsCompleted: stats.Completed,
		Topics:         res.Topics,
		Summary:        res.Summary,
	})
}
