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

// GoalsCmd creates the goals command group
func GoalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage daily micro-goals",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List goals for a date",
		Run: func(cmd *cobra.Command, args []string) {
			withGoalsContext(func(ctx context.Context, svcCtx *svc.ServiceContext, date string) error {
				list, err := svcCtx.DB.GoalsByDate(ctx, svcCtx.UserID, date)
				if err != nil {
					return err
				}
				stats, err := svcCtx.DB.GoalStatsForDate(ctx, svcCtx.UserID, date)
				if err != nil {
					return err
				}
				if len(list) == 0 {
					fmt.Printf("No goals for %s yet.\n", date)
					return nil
				}
				for _, g := range list {
					mark := "[ ]"
					if g.Done {
						mark = "[x]"
					}
					fmt.Printf("%s %s  %s\n", mark, g.ID, g.Title)
				}
				fmt.Printf("%d/%d done\n", stats.Completed, stats.Added)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <title>",
		Short: "Add a goal for a date",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			withGoalsContext(func(ctx context.Context, svcCtx *svc.ServiceContext, date string) error {
				g, err := svcCtx.DB.AddGoal(ctx, svcCtx.UserID, strings.Join(args, " "), date, "")
				if err != nil {
					return err
				}
				fmt.Printf("Added %s: %s\n", g.ID, g.Title)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "done <id>",
		Short: "Mark a goal done",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			withGoalsContext(func(ctx context.Context, svcCtx *svc.ServiceContext, date string) error {
				return svcCtx.DB.ToggleGoal(ctx, svcCtx.UserID, args[0], true)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			withGoalsContext(func(ctx context.Context, svcCtx *svc.ServiceContext, date string) error {
				return svcCtx.DB.DeleteGoal(ctx, svcCtx.UserID, args[0])
			})
		},
	})

	return cmd
}

// withGoalsContext wires the service context and resolves the --date
// flag for the goal subcommands.
func withGoalsContext(fn func(ctx context.Context, svcCtx *svc.ServiceContext, date string) error) {
	c, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if !verbose {
		logging.Disable()
		migrations.QuietMode = true
	}

	svcCtx, err := svc.NewServiceContext(*c)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	defer svcCtx.Close()

	date := dateArg
	if date == "" {
		date = db.ToDateISO(time.Now())
	}

	if err := fn(context.Background(), svcCtx, date); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
