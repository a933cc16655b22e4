package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/daybookhq/daybook/internal/db"
	"github.com/daybookhq/daybook/internal/db/migrations"
	"github.com/daybookhq/daybook/internal/guide"
	"github.com/daybookhq/daybook/internal/logging"
	"github.com/daybookhq/daybook/internal/svc"
)

// ChatCmd creates the chat command
func ChatCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Journal with the assistant",
		Long: `Send one journaling message, or start an interactive session.

Examples:
  daybook chat "Feeling scattered today, too many meetings"
  daybook chat --interactive
  daybook chat -i -d 2026-08-30`,
		Run: func(cmd *cobra.Command, args []string) {
			runChat(interactive || len(args) == 0, args)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "start an interactive session")
	return cmd
}

func runChat(interactive bool, args []string) {
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

	ctx := context.Background()

	if !interactive {
		sendTurn(ctx, svcCtx, date, guide.TurnInput{Text: strings.Join(args, " ")})
		return
	}

	fmt.Printf("Daybook — journaling for %s. Type /exercises to browse, /start <id> to begin one, /quit to leave.\n\n", date)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "/quit" || line == "/q":
			return
		case line == "/exercises":
			for _, ex := range svcCtx.Catalog.List() {
				fmt.Printf("  %-24s %s (%d min)\n", ex.ID, ex.Title, ex.DurationMin)
			}
			continue
		case strings.HasPrefix(line, "/start "):
			id := strings.TrimSpace(strings.TrimPrefix(line, "/start "))
			sendTurn(ctx, svcCtx, date, guide.TurnInput{StartExerciseID: id})
			continue
		}
		sendTurn(ctx, svcCtx, date, guide.TurnInput{Text: line})
	}
}

func sendTurn(ctx context.Context, svcCtx *svc.ServiceContext, date string, in guide.TurnInput) {
	reply, err := svcCtx.Engine.ProcessTurn(ctx, date, in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Something went wrong — your message was saved, try again in a moment.")
		if verbose {
			fmt.Fprintln(os.Stderr, err)
		}
		return
	}
	for _, msg := range reply.Messages {
		fmt.Println(msg.Content)
		fmt.Println()
	}
}
