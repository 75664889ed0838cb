package store

import (
	"slices"
	"strings"
	"time"
)

const (
	sessionMarker     = "- 🍅 "
	sessionTimeLayout = "2006-01-02 15:04"
	cancelledSuffix   = " cancelled"
)

// AddSession records a focus session under the target task, after any
// sub-items already attached to it, so annotations stay in chronological
// append order.
func (s *Store) AddSession(openIdx int, startedAt time.Time, cancelled bool) error {
	line := indent + sessionMarker + startedAt.Format(sessionTimeLayout)
	if cancelled {
		line += cancelledSuffix
	}
	return s.insertSubItem(openIdx, line)
}

// parseSessionLine decodes a focus-session annotation. Only indented lines
// carrying the session marker qualify; notes and other sub-items are
// skipped.
func parseSessionLine(line string) (Session, bool) {
	if !strings.HasPrefix(line, indent) {
		return Session{}, false
	}
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), sessionMarker)
	if !ok {
		return Session{}, false
	}
	cancelled := strings.HasSuffix(rest, cancelledSuffix)
	rest = strings.TrimSuffix(rest, cancelledSuffix)

	startedAt, err := time.Parse(sessionTimeLayout, rest)
	if err != nil {
		return Session{}, false
	}
	return Session{StartedAt: startedAt, Cancelled: cancelled}, true
}

// Sessions returns every focus-session annotation in the document, in file
// order.
func (s *Store) Sessions() ([]Session, error) {
	d, err := s.readOrEmpty()
	if err != nil {
		return nil, err
	}
	var sessions []Session
	for _, line := range d.lines {
		if sess, ok := parseSessionLine(line); ok {
			sessions = append(sessions, sess)
		}
	}
	return sessions, nil
}

// SessionStats aggregates focus sessions into per-day totals, ordered by
// date.
func (s *Store) SessionStats() ([]DayStats, error) {
	sessions, err := s.Sessions()
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*DayStats)
	for _, sess := range sessions {
		date := sess.StartedAt.Format("2006-01-02")
		st, ok := byDate[date]
		if !ok {
			st = &DayStats{Date: date}
			byDate[date] = st
		}
		if sess.Cancelled {
			st.Cancelled++
		} else {
			st.Completed++
		}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	slices.Sort(dates)

	stats := make([]DayStats, 0, len(dates))
	for _, date := range dates {
		stats = append(stats, *byDate[date])
	}
	return stats, nil
}
