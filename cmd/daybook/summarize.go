package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/daybookhq/daybook/internal/db"
	"github.com/daybookhq/daybook/internal/db/migrations"
	"github.com/daybookhq/daybook/internal/logging"
	"github.com/daybookhq/daybook/internal/svc"
)

// SummarizeCmd creates the summarize command
func SummarizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summarize",
		Short: "Generate the daily summary for a date",
		Long: `Summarize a date's journal into mood, topics, goal counts and a
short digest. Runs the same job the nightly scheduler runs.`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runSummarize(); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(1)
			}
		},
	}
}

func runSummarize() error {
	c, err := loadConfig()
	if err != nil {
		return err
	}
	if !verbose {
		logging.Disable()
		migrations.QuietMode = true
	}

	svcCtx, err := svc.NewServiceContext(*c)
	if err != nil {
		return err
	}
	defer svcCtx.Close()

	date := dateArg
	if date == "" {
		date = db.ToDateISO(time.Now())
	}

	sum, err := svcCtx.Summarizer.Summarize(context.Background(), svcCtx.UserID, date)
	if err != nil {
		return err
	}

	fmt.Printf("Summary for %s\n", date)
	if sum.Mood != "" {
		fmt.Printf("  Mood:   %s\n", sum.Mood)
	}
	if len(sum.Topics) > 0 {
		fmt.Printf("  Topics: %s\n", strings.Join(sum.Topics, ", "))
	}
	fmt.Printf("  Goals:  %d added, %d done\n", sum.GoalsAdded, sum.GoalsCompleted)
	fmt.Printf("  %s\n", sum.Summary)
	return nil
}
