package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:     "note <text>",
	Aliases: []string{"n"},
	Short:   "Add a note to a task",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNote(args[0])
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)
}

func runNote(text string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	open, err := s.OpenTodos()
	if err != nil {
		return err
	}
	if len(open) == 0 {
		fmt.Println("No open tasks. Add a task first with: ambrogio tasks add <name>")
		return nil
	}

	idx, err := selectTodo("Select a task:", open)
	if err != nil {
		return err
	}
	if err := s.AddNote(idx, text); err != nil {
		return err
	}
	fmt.Printf("Added note to: %s\n", open[idx].Description)
	return nil
}
