// Package scheduler runs the nightly day-summarization on a cron
// schedule.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/daybookhq/daybook/internal/db"
	"github.com/daybookhq/daybook/internal/logging"
	"github.com/daybookhq/daybook/internal/summary"
)

// Scheduler triggers full-day summarization for the current date.
type Scheduler struct {
	cron       *cron.Cron
	summarizer *summary.Summarizer
	userID     string
}

// New creates a scheduler; call Start to begin.
func New(summarizer *summary.Summarizer, userID string) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		summarizer: summarizer,
		userID:     userID,
	}
}

// Start registers the job and starts the cron loop. spec uses the
// standard 5-field cron format.
func (s *Scheduler) Start(ctx context.Context, spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		date := db.ToDateISO(time.Now())
		if _, err := s.summarizer.Summarize(ctx, s.userID, date); err != nil {
			// Scheduled runs have no caller to retry; log and move on.
			logging.Errorf("scheduled summarization for %s failed: %v", date, err)
			return
		}
		logging.Infof("scheduled summarization for %s done", date)
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop stops the cron loop, waiting for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
