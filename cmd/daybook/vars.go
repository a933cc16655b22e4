// Package cli holds the daybook command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/daybookhq/daybook/internal/config"
)

// Shared CLI flags (used across multiple command files)
var (
	cfgFile string
	dateArg string
	verbose bool
)

// ServerConfig holds the loaded configuration (set by main)
var ServerConfig *config.Config

// SetupRootCmd configures the root command with all subcommands and flags
func SetupRootCmd(c *config.Config) *cobra.Command {
	ServerConfig = c

	rootCmd := &cobra.Command{
		Use:   "daybook",
		Short: "Daybook - resilience journaling assistant",
		Long: `Daybook is a journaling assistant that turns daily check-ins into
micro-goals, guided exercises, and end-of-day summaries.

Just type 'daybook' to start an interactive journaling session, or
'daybook serve' to run the HTTP API.`,
		Run: func(cmd *cobra.Command, args []string) {
			runChat(true, args)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: embedded)")
	rootCmd.PersistentFlags().StringVarP(&dateArg, "date", "d", "", "journal date YYYY-MM-DD (default: today)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Add commands
	rootCmd.AddCommand(ServeCmd())
	rootCmd.AddCommand(ChatCmd())
	rootCmd.AddCommand(GoalsCmd())
	rootCmd.AddCommand(ExercisesCmd())
	rootCmd.AddCommand(SummarizeCmd())

	return rootCmd
}

// loadConfig returns ServerConfig, or the --config file when given.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFrom(cfgFile)
	}
	if ServerConfig != nil {
		return ServerConfig, nil
	}
	return config.Load()
}
