package entity

import (
	"fmt"
	"time"
)

// Store column names for timetable entries.
const (
	EntryColSubject   = "subject"
	EntryColDayOfWeek = "day_of_week"
	EntryColStartTime = "start_time"
	EntryColEndTime   = "end_time"
	EntryColLocation  = "location"
)

// TimetableEntry is a weekly recurring slot. DayOfWeek runs 0..6 with Sunday as 0,
// times are "HH:MM" on a 24 hour clock.
type TimetableEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Subject   string    `json:"subject"`
	DayOfWeek int       `json:"dayOfWeek"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Location  *string   `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntryLess orders entries by day of week, then start time.
func EntryLess(a, b TimetableEntry) bool {
	if a.DayOfWeek != b.DayOfWeek {
		return a.DayOfWeek < b.DayOfWeek
	}
	if a.StartTime != b.StartTime {
		return a.StartTime < b.StartTime
	}
	return a.CreatedAt.Before(b.CreatedAt)
}

// NormalizeClock turns "9:05" or "09:05" into the canonical "09:05".
func NormalizeClock(s string) (string, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return "", fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return t.Format("15:04"), nil
}

// TimetablePatch is a partial timetable update decoded from the public payload.
type TimetablePatch struct {
	Subject   Optional[string]  `json:"subject"`
	DayOfWeek Optional[int]     `json:"dayOfWeek"`
	StartTime Optional[string]  `json:"startTime"`
	EndTime   Optional[string]  `json:"endTime"`
	Location  Optional[*string] `json:"location"`
}

func (p TimetablePatch) Assignments() []Assignment {
	out := make([]Assignment, 0, 5)
	if p.Subject.Set {
		out = append(out, Assignment{Column: EntryColSubject, Value: p.Subject.Value})
	}
	if p.DayOfWeek.Set {
		out = append(out, Assignment{Column: EntryColDayOfWeek, Value: p.DayOfWeek.Value})
	}
	if p.StartTime.Set {
		out = append(out, Assignment{Column: EntryColStartTime, Value: p.StartTime.Value})
	}
	if p.EndTime.Set {
		out = append(out, Assignment{Column: EntryColEndTime, Value: p.EndTime.Value})
	}
	if p.Location.Set {
		out = append(out, Assignment{Column: EntryColLocation, Value: p.Location.Value})
	}
	return out
}
