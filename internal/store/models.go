package store

import "time"

// Todo is a single task parsed out of the document. Position is implicit:
// callers address open todos by their rank in the OpenTodos ordering,
// which the store recomputes from the file on every call.
type Todo struct {
	Description string
	Done        bool
	Project     string
}

// Session is one focus-session annotation attached to a task.
type Session struct {
	StartedAt time.Time
	Cancelled bool
}

// DayStats aggregates focus sessions for one calendar day.
type DayStats struct {
	Date      string // YYYY-MM-DD
	Completed int
	Cancelled int
}
