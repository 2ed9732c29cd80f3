package helpers

import (
	"errors"
	"strings"
	"time"
)

var ErrBadDate = errors.New("expected RFC3339 timestamp or YYYY-MM-DD date")

// ParseDateParam accepts a full RFC3339 timestamp or a bare date.
// A bare date means midnight UTC, or the end of that day when endOfDay is set.
func ParseDateParam(s string, endOfDay bool) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	if endOfDay {
		return d.Add(24*time.Hour - time.Nanosecond), nil
	}
	return d, nil
}

// LoadLocation resolves an IANA zone name, falling back to UTC for empty or unknown names.
func LoadLocation(name string) *time.Location {
	if strings.TrimSpace(name) == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
