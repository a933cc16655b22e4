package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/daybookhq/daybook/internal/db/migrations"
	"github.com/daybookhq/daybook/internal/logging"
	"github.com/daybookhq/daybook/internal/scheduler"
	"github.com/daybookhq/daybook/internal/server"
	"github.com/daybookhq/daybook/internal/svc"
)

// ServeCmd creates the serve command
func ServeCmd() *cobra.Command {
	var noCron bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Start the daybook API server on the configured port, with the
nightly summarization job scheduled alongside it.`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runServe(noCron); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(1)
			}
		},
	}

	cmd.Flags().BoolVar(&noCron, "no-cron", false, "disable the nightly summarization job")
	return cmd
}

func runServe(noCron bool) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}
	if !verbose {
		logging.Disable()
		migrations.QuietMode = true
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Printf("\nReceived signal: %v - shutting down...\n", sig)
		cancel()
	}()

	svcCtx, err := svc.NewServiceContext(*c)
	if err != nil {
		return err
	}
	defer svcCtx.Close()

	if !noCron {
		sched := scheduler.New(svcCtx.Summarizer, svcCtx.UserID)
		if err := sched.Start(ctx, c.Summarizer.CronSpec); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}
		defer sched.Stop()
	}

	return server.Run(ctx, svcCtx, server.Options{Quiet: !verbose})
}
