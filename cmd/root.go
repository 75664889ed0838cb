// Package cmd implements the ambrogio command tree.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sadopc/ambrogio/internal/config"
	"github.com/sadopc/ambrogio/internal/store"
)

// rootCmd is the base command; invoked without a subcommand it drops into
// the chat REPL.
var rootCmd = &cobra.Command{
	Use:   "ambrogio",
	Short: "Your daily organiser assistant",
	Long: `Ambrogio is a personal daily organiser: projects, tasks and pomodoro
focus sessions, all kept in one human-readable markdown file, plus a chat
assistant that answers questions about the same document.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd.Context())
	},
	SilenceUsage: true,
}

// Execute runs the CLI. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func openStore() (*store.Store, error) {
	path, err := config.FilePath()
	if err != nil {
		return nil, err
	}
	return store.New(path), nil
}
