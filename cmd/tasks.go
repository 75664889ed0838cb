package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sadopc/ambrogio/internal/store"
)

var tasksCmd = &cobra.Command{
	Use:     "tasks",
	Aliases: []string{"t"},
	Short:   "Manage your task list",
}

var tasksAddCmd = &cobra.Command{
	Use:     "add <description>",
	Aliases: []string{"a"},
	Short:   "Add a new task",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTasksAdd(args[0])
	},
}

var tasksListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List open tasks",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTasksList()
	},
}

var tasksCompleteCmd = &cobra.Command{
	Use:     "complete",
	Aliases: []string{"c"},
	Short:   "Mark a task as complete",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTasksComplete()
	},
}

var tasksDeleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"d"},
	Short:   "Delete a task",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTasksDelete()
	},
}

func init() {
	tasksCmd.AddCommand(tasksAddCmd, tasksListCmd, tasksCompleteCmd, tasksDeleteCmd)
	rootCmd.AddCommand(tasksCmd)
}

func runTasksAdd(description string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	projects, err := s.Projects()
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Println("No projects. Add a project first with: ambrogio projects add <name>")
		return nil
	}

	project, err := selectProject("Select a project:", projects)
	if err != nil {
		return err
	}
	if err := s.AddTodo(project, description); err != nil {
		return err
	}
	fmt.Printf("Added to %s: %s\n", project, description)
	return nil
}

func runTasksList() error {
	s, err := openStore()
	if err != nil {
		return err
	}
	open, err := s.OpenTodos()
	if err != nil {
		return err
	}
	fmt.Print(renderOpenTodos(open))
	return nil
}

// renderOpenTodos groups open tasks by project, numbering them with the
// same ordering the selection prompts use.
func renderOpenTodos(todos []store.Todo) string {
	if len(todos) == 0 {
		return "No open todos.\n"
	}

	var b strings.Builder
	currentProject := ""
	for i, t := range todos {
		if t.Project != currentProject {
			currentProject = t.Project
			fmt.Fprintf(&b, "\n  ## %s\n", currentProject)
		}
		fmt.Fprintf(&b, "  %d. %s\n", i+1, t.Description)
	}
	return b.String()
}

func runTasksComplete() error {
	s, err := openStore()
	if err != nil {
		return err
	}
	open, err := s.OpenTodos()
	if err != nil {
		return err
	}
	if len(open) == 0 {
		fmt.Println("No open tasks to complete.")
		return nil
	}

	idx, err := selectTodo("Select a task to complete:", open)
	if err != nil {
		return err
	}
	if err := s.Complete(idx); err != nil {
		return err
	}
	fmt.Printf("Completed: %s\n", open[idx].Description)
	return nil
}

func runTasksDelete() error {
	s, err := openStore()
	if err != nil {
		return err
	}
	open, err := s.OpenTodos()
	if err != nil {
		return err
	}
	if len(open) == 0 {
		fmt.Println("No open tasks to delete.")
		return nil
	}

	idx, err := selectTodo("Select a task to delete:", open)
	if err != nil {
		return err
	}
	if err := s.DeleteTodo(idx); err != nil {
		return err
	}
	fmt.Printf("Deleted: %s\n", open[idx].Description)
	return nil
}
