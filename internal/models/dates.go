package models

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format used for stored dates.
const DateLayout = "2006-01-02"

// ParseDate parses a stored date. RFC 3339 timestamps are accepted as well.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
