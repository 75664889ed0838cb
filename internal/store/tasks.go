package store

import (
	"slices"
	"strings"
)

// AddTodo appends a new open task as the last line of the named project's
// section, immediately before the next project header.
func (s *Store) AddTodo(project, description string) error {
	d, err := s.read()
	if err != nil {
		return err
	}

	headerIdx, err := findProjectHeader(d.lines, project)
	if err != nil {
		return err
	}
	sectionEnd := findSectionEnd(d.lines, headerIdx)

	d.lines = slices.Insert(d.lines, sectionEnd, openPrefix+description)
	return s.write(d)
}

// LoadAll parses every task in the document, in file order. Tasks that
// appear before the first project header are invisible, matching the
// grouped listing.
func (s *Store) LoadAll() ([]Todo, error) {
	d, err := s.readOrEmpty()
	if err != nil {
		return nil, err
	}

	var todos []Todo
	currentProject := ""
	for _, line := range d.lines {
		if name, ok := parseProjectHeader(line); ok {
			currentProject = name
		} else if desc, done, ok := parseTodoLine(line); ok && currentProject != "" {
			todos = append(todos, Todo{
				Description: desc,
				Done:        done,
				Project:     currentProject,
			})
		}
	}
	return todos, nil
}

// OpenTodos returns the currently-open tasks in document order. The slice
// index of each entry is the ordinal accepted by Complete, DeleteTodo,
// AddSession and AddNote until the next mutation.
func (s *Store) OpenTodos() ([]Todo, error) {
	todos, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	var open []Todo
	for _, t := range todos {
		if !t.Done {
			open = append(open, t)
		}
	}
	return open, nil
}

// Complete flips the target task's marker from open to done, leaving the
// description and any attached sub-items untouched.
func (s *Store) Complete(openIdx int) error {
	d, err := s.read()
	if err != nil {
		return err
	}

	target, err := findOpenTodoLine(d.lines, openIdx)
	if err != nil {
		return err
	}

	d.lines[target] = strings.Replace(d.lines[target], openPrefix, donePrefix, 1)
	return s.write(d)
}

// DeleteTodo removes the target task line together with its contiguous
// block of indented sub-items, mirroring the owned-range rule of project
// deletion. Leaving the sub-items behind would attach them to the previous
// task and corrupt later session appends.
func (s *Store) DeleteTodo(openIdx int) error {
	d, err := s.read()
	if err != nil {
		return err
	}

	target, err := findOpenTodoLine(d.lines, openIdx)
	if err != nil {
		return err
	}
	end := subItemEnd(d.lines, target)

	d.lines = slices.Delete(d.lines, target, end)
	return s.write(d)
}

// AddNote appends an indented note line after the target task's existing
// sub-items.
func (s *Store) AddNote(openIdx int, text string) error {
	return s.insertSubItem(openIdx, indent+"- "+text)
}

func (s *Store) insertSubItem(openIdx int, line string) error {
	d, err := s.read()
	if err != nil {
		return err
	}

	target, err := findOpenTodoLine(d.lines, openIdx)
	if err != nil {
		return err
	}
	insertAt := subItemEnd(d.lines, target)

	d.lines = slices.Insert(d.lines, insertAt, line)
	return s.write(d)
}
