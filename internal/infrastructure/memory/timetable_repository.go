package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/student-planner-api/internal/domain/entity"
	"github.com/oksasatya/student-planner-api/internal/domain/repository"
)

type TimetableRepository struct {
	s *Store
}

func cloneEntry(e entity.TimetableEntry) entity.TimetableEntry {
	e.Location = cloneString(e.Location)
	return e
}

// normalizeEntry mirrors the TIME column: clock values come back as "HH:MM".
func normalizeEntry(e *entity.TimetableEntry) error {
	if e.DayOfWeek < 0 || e.DayOfWeek > 6 {
		return &repository.ConstraintError{Kind: repository.ConstraintCheck, Constraint: "timetable_entries_day_of_week_check"}
	}
	start, err := entity.NormalizeClock(e.StartTime)
	if err != nil {
		return &repository.ConstraintError{Kind: repository.ConstraintCheck, Constraint: "start_time", Err: err}
	}
	end, err := entity.NormalizeClock(e.EndTime)
	if err != nil {
		return &repository.ConstraintError{Kind: repository.ConstraintCheck, Constraint: "end_time", Err: err}
	}
	e.StartTime, e.EndTime = start, end
	return nil
}

func (r *TimetableRepository) Create(_ context.Context, e *entity.TimetableEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[e.UserID]; !ok {
		return &repository.ConstraintError{Kind: repository.ConstraintForeignKey, Constraint: "timetable_entries_user_id_fkey"}
	}
	row := cloneEntry(*e)
	if err := normalizeEntry(&row); err != nil {
		return err
	}
	var last time.Time
	for _, existing := range r.s.entries {
		if existing.CreatedAt.After(last) {
			last = existing.CreatedAt
		}
	}
	row.ID = uuid.NewString()
	row.CreatedAt = r.s.stamp(last)
	row.UpdatedAt = row.CreatedAt
	r.s.entries[row.ID] = row
	*e = cloneEntry(row)
	return nil
}

func (r *TimetableRepository) owned(id, ownerID string) (entity.TimetableEntry, bool) {
	e, ok := r.s.entries[id]
	if !ok || e.UserID != ownerID {
		return entity.TimetableEntry{}, false
	}
	return e, true
}

func (r *TimetableRepository) List(_ context.Context, ownerID string) ([]entity.TimetableEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.TimetableEntry, 0)
	for _, e := range r.s.entries {
		if e.UserID == ownerID {
			out = append(out, cloneEntry(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return entity.EntryLess(out[i], out[j]) })
	return out, nil
}

func (r *TimetableRepository) Get(_ context.Context, id, ownerID string) (*entity.TimetableEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.owned(id, ownerID)
	if !ok {
		return nil, repository.ErrNotFound
	}
	e = cloneEntry(e)
	return &e, nil
}

func (r *TimetableRepository) Update(_ context.Context, id, ownerID string, set []entity.Assignment) (*entity.TimetableEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.owned(id, ownerID)
	if !ok {
		return nil, repository.ErrNotFound
	}
	e = cloneEntry(e)
	applied := 0
	for _, a := range set {
		ok := true
		switch a.Column {
		case entity.EntryColSubject:
			e.Subject, ok = a.Value.(string)
		case entity.EntryColDayOfWeek:
			e.DayOfWeek, ok = a.Value.(int)
		case entity.EntryColStartTime:
			e.StartTime, ok = a.Value.(string)
		case entity.EntryColEndTime:
			e.EndTime, ok = a.Value.(string)
		case entity.EntryColLocation:
			var v *string
			v, ok = a.Value.(*string)
			e.Location = cloneString(v)
		default:
			continue
		}
		if !ok {
			return nil, fmt.Errorf("update timetable entry: unexpected %T for column %s", a.Value, a.Column)
		}
		applied++
	}
	if applied == 0 {
		return nil, fmt.Errorf("update timetable entry: no assignments")
	}
	if err := normalizeEntry(&e); err != nil {
		return nil, err
	}
	e.UpdatedAt = r.s.stamp(e.UpdatedAt)
	r.s.entries[id] = e
	e = cloneEntry(e)
	return &e, nil
}

func (r *TimetableRepository) Delete(_ context.Context, id, ownerID string) (*entity.TimetableEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.owned(id, ownerID)
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.s.entries, id)
	return &e, nil
}

func (r *TimetableRepository) Subjects(_ context.Context, ownerID string) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, e := range r.s.entries {
		if e.UserID != ownerID {
			continue
		}
		if _, dup := seen[e.Subject]; dup {
			continue
		}
		seen[e.Subject] = struct{}{}
		out = append(out, e.Subject)
	}
	sort.Strings(out)
	return out, nil
}

var _ repository.TimetableRepository = (*TimetableRepository)(nil)
