package store

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// Projects lists project names in file order. A missing file is an empty
// organiser, not an error.
func (s *Store) Projects() ([]string, error) {
	d, err := s.readOrEmpty()
	if err != nil {
		return nil, err
	}
	var projects []string
	for _, line := range d.lines {
		if name, ok := parseProjectHeader(line); ok {
			projects = append(projects, name)
		}
	}
	return projects, nil
}

// AddProject appends a new empty project section at the end of the
// document, creating the file (and its parent directory) if needed.
func (s *Store) AddProject(name string) error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
		return s.write(&document{
			lines:           []string{headerPrefix + name},
			trailingNewline: true,
		})
	}

	d, err := s.read()
	if err != nil {
		return err
	}
	for _, line := range d.lines {
		if existing, ok := parseProjectHeader(line); ok && existing == name {
			return fmt.Errorf("project %q: %w", name, ErrAlreadyExists)
		}
	}

	d.lines = append(d.lines, headerPrefix+name)
	d.trailingNewline = true
	return s.write(d)
}

// DeleteProject removes the project's header line and everything it owns:
// all lines up to the next project header or end of file.
func (s *Store) DeleteProject(name string) error {
	d, err := s.read()
	if err != nil {
		return err
	}

	headerIdx, err := findProjectHeader(d.lines, name)
	if err != nil {
		return err
	}
	sectionEnd := findSectionEnd(d.lines, headerIdx)

	d.lines = slices.Delete(d.lines, headerIdx, sectionEnd)
	return s.write(d)
}

func findProjectHeader(lines []string, name string) (int, error) {
	for i, line := range lines {
		if existing, ok := parseProjectHeader(line); ok && existing == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("project %q: %w", name, ErrNotFound)
}
