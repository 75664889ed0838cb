// Package store keeps the organiser markdown file as the single source of
// truth for projects, tasks and focus-session history. Every operation
// re-reads the file, edits the lines it targets and rewrites the whole
// document, leaving every line it does not understand untouched.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)

const (
	headerPrefix = "## "
	openPrefix   = "- [ ] "
	donePrefix   = "- [x] "
	indent       = "  "
)

type Store struct {
	path string
}

// New returns a store backed by the markdown file at path. The file is not
// opened here; each operation reads it fresh so external edits between
// invocations are always picked up.
func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// document is the file split into lines, plus whether the original content
// ended with a newline so a rewrite can reproduce it byte-for-byte.
type document struct {
	lines           []string
	trailingNewline bool
}

func parseDocument(content string) *document {
	d := &document{
		trailingNewline: content == "" || strings.HasSuffix(content, "\n"),
	}
	if content != "" {
		d.lines = strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	}
	return d
}

func (d *document) render() string {
	if len(d.lines) == 0 {
		return ""
	}
	out := strings.Join(d.lines, "\n")
	if d.trailingNewline {
		out += "\n"
	}
	return out
}

// read loads the document; the file must exist.
func (s *Store) read() (*document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return parseDocument(string(data)), nil
}

// readOrEmpty loads the document, treating a missing file as empty.
func (s *Store) readOrEmpty() (*document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return parseDocument(""), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return parseDocument(string(data)), nil
}

func (s *Store) write(d *document) error {
	if err := os.WriteFile(s.path, []byte(d.render()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

func parseProjectHeader(line string) (string, bool) {
	name, ok := strings.CutPrefix(line, headerPrefix)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(name), true
}

// parseTodoLine reports the description and completion state of a task
// line. Non-task lines (headers, annotations, anything else) return ok=false.
func parseTodoLine(line string) (desc string, done, ok bool) {
	trimmed := strings.TrimSpace(line)
	if d, ok := strings.CutPrefix(trimmed, openPrefix); ok {
		return d, false, true
	}
	if d, ok := strings.CutPrefix(trimmed, donePrefix); ok {
		return d, true, true
	}
	return "", false, false
}

func isOpenTodoLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), openPrefix)
}

// findOpenTodoLine resolves an open-task ordinal to a raw line index with a
// single scan that counts only currently-open tasks. Done tasks are skipped,
// so the ordinal a caller got from OpenTodos always lands on the same task
// no matter how many completed tasks precede it.
func findOpenTodoLine(lines []string, openIdx int) (int, error) {
	count := 0
	for i, line := range lines {
		if isOpenTodoLine(line) {
			if count == openIdx {
				return i, nil
			}
			count++
		}
	}
	return 0, fmt.Errorf("todo index %d: %w", openIdx, ErrIndexOutOfBounds)
}

// findSectionEnd returns the index just past the last line owned by the
// project whose header is at headerIdx: everything up to the next header
// or end of file.
func findSectionEnd(lines []string, headerIdx int) int {
	for i := headerIdx + 1; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], headerPrefix) {
			return i
		}
	}
	return len(lines)
}

// subItemEnd returns the index just past the contiguous block of indented
// sub-items (session annotations, notes) attached to the task at taskIdx.
func subItemEnd(lines []string, taskIdx int) int {
	i := taskIdx + 1
	for i < len(lines) && strings.HasPrefix(lines[i], indent) {
		i++
	}
	return i
}

// DefaultFilePath returns ~/.config/ambrogio/todos.md.
func DefaultFilePath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "ambrogio", "todos.md"), nil
}
