package entity

import "time"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities for sorting; higher is more urgent. Unknown values rank lowest.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

func (p Priority) Valid() bool { return p.Rank() > 0 }

// Status is caller driven: any status may move to any other.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// RecurrenceType is descriptive metadata only; nothing generates future instances from it.
type RecurrenceType string

const (
	RecurrenceDaily  RecurrenceType = "daily"
	RecurrenceWeekly RecurrenceType = "weekly"
)

func (r RecurrenceType) Valid() bool {
	return r == RecurrenceDaily || r == RecurrenceWeekly
}

// Store column names for tasks.
const (
	TaskColSubject        = "subject"
	TaskColTitle          = "title"
	TaskColDescription    = "description"
	TaskColDeadline       = "deadline"
	TaskColPriority       = "priority"
	TaskColStatus         = "status"
	TaskColIsRecurring    = "is_recurring"
	TaskColRecurrenceType = "recurrence_type"
)

type Task struct {
	ID             string          `json:"id"`
	UserID         string          `json:"userId"`
	Subject        string          `json:"subject"`
	Title          string          `json:"title"`
	Description    *string         `json:"description"`
	Deadline       time.Time       `json:"deadline"`
	Priority       Priority        `json:"priority"`
	Status         Status          `json:"status"`
	IsRecurring    bool            `json:"isRecurring"`
	RecurrenceType *RecurrenceType `json:"recurrenceType"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// IsOverdue reports whether the task is unfinished with a deadline strictly before now.
// It is derived on every call and never stored.
func (t Task) IsOverdue(now time.Time) bool {
	return t.Status != StatusDone && t.Deadline.Before(now)
}

// TaskFilter holds the optional list predicates. A nil field does not restrict the result.
// Present fields combine with AND; date bounds are inclusive on the deadline.
type TaskFilter struct {
	Status    *Status
	Priority  *Priority
	StartDate *time.Time
	EndDate   *time.Time
}

func (f TaskFilter) Match(t Task) bool {
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	if f.StartDate != nil && t.Deadline.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && t.Deadline.After(*f.EndDate) {
		return false
	}
	return true
}

// TaskLess is the list ordering: deadline ascending, then priority descending,
// then creation time so equal rows keep a stable order.
func TaskLess(a, b Task) bool {
	if !a.Deadline.Equal(b.Deadline) {
		return a.Deadline.Before(b.Deadline)
	}
	if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
		return ra > rb
	}
	return a.CreatedAt.Before(b.CreatedAt)
}

// TaskPatch is a partial task update decoded from the public (camelCase) payload.
// Only the fields declared here can ever be written; owner and id are not among them.
type TaskPatch struct {
	Subject        Optional[string]          `json:"subject"`
	Title          Optional[string]          `json:"title"`
	Description    Optional[*string]         `json:"description"`
	Deadline       Optional[time.Time]       `json:"deadline"`
	Priority       Optional[Priority]        `json:"priority"`
	Status         Optional[Status]          `json:"status"`
	IsRecurring    Optional[bool]            `json:"isRecurring"`
	RecurrenceType Optional[*RecurrenceType] `json:"recurrenceType"`
}

// Assignments walks the allow-list in a fixed order and returns the present fields
// keyed by their store column.
func (p TaskPatch) Assignments() []Assignment {
	out := make([]Assignment, 0, 8)
	if p.Subject.Set {
		out = append(out, Assignment{Column: TaskColSubject, Value: p.Subject.Value})
	}
	if p.Title.Set {
		out = append(out, Assignment{Column: TaskColTitle, Value: p.Title.Value})
	}
	if p.Description.Set {
		out = append(out, Assignment{Column: TaskColDescription, Value: p.Description.Value})
	}
	if p.Deadline.Set {
		out = append(out, Assignment{Column: TaskColDeadline, Value: p.Deadline.Value})
	}
	if p.Priority.Set {
		out = append(out, Assignment{Column: TaskColPriority, Value: string(p.Priority.Value)})
	}
	if p.Status.Set {
		out = append(out, Assignment{Column: TaskColStatus, Value: string(p.Status.Value)})
	}
	if p.IsRecurring.Set {
		out = append(out, Assignment{Column: TaskColIsRecurring, Value: p.IsRecurring.Value})
	}
	if p.RecurrenceType.Set {
		var rt *string
		if p.RecurrenceType.Value != nil {
			s := string(*p.RecurrenceType.Value)
			rt = &s
		}
		out = append(out, Assignment{Column: TaskColRecurrenceType, Value: rt})
	}
	return out
}
