package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:     "projects",
	Aliases: []string{"p"},
	Short:   "Manage projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProjectsList()
	},
}

var projectsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProjectsAdd(args[0])
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a project and all its todos",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProjectsDelete()
	},
}

func init() {
	projectsCmd.AddCommand(projectsListCmd, projectsAddCmd, projectsDeleteCmd)
	rootCmd.AddCommand(projectsCmd)
}

func runProjectsList() error {
	s, err := openStore()
	if err != nil {
		return err
	}
	projects, err := s.Projects()
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Println("No projects.")
		return nil
	}
	for i, project := range projects {
		fmt.Printf("  %d. %s\n", i+1, project)
	}
	return nil
}

func runProjectsAdd(name string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	if err := s.AddProject(name); err != nil {
		return err
	}
	fmt.Printf("Added project: %s\n", name)
	return nil
}

func runProjectsDelete() error {
	s, err := openStore()
	if err != nil {
		return err
	}
	projects, err := s.Projects()
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Println("No projects to delete.")
		return nil
	}

	name, err := selectProject("Select a project to delete:", projects)
	if err != nil {
		return err
	}
	ok, err := confirm(fmt.Sprintf("Delete %q and all its todos?", name))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := s.DeleteProject(name); err != nil {
		return err
	}
	fmt.Printf("Deleted project: %s\n", name)
	return nil
}
