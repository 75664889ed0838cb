package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/sadopc/ambrogio/internal/store"
)

func selectProject(title string, projects []string) (string, error) {
	options := make([]huh.Option[string], len(projects))
	for i, p := range projects {
		options[i] = huh.NewOption(p, p)
	}

	var selected string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title(title).Options(options...).Value(&selected),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}

// selectTodo prompts for one of the open todos and returns its ordinal in
// the slice, which is exactly the index the store operations expect.
func selectTodo(title string, todos []store.Todo) (int, error) {
	options := make([]huh.Option[int], len(todos))
	for i, t := range todos {
		options[i] = huh.NewOption(fmt.Sprintf("%s: %s", t.Project, t.Description), i)
	}

	var selected int
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().Title(title).Options(options...).Value(&selected),
	))
	if err := form.Run(); err != nil {
		return 0, err
	}
	return selected, nil
}

func confirm(title string) (bool, error) {
	var ok bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Value(&ok),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}
