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

type TaskRepository struct {
	s *Store
}

func cloneTask(t entity.Task) entity.Task {
	t.Description = cloneString(t.Description)
	if t.RecurrenceType != nil {
		rt := *t.RecurrenceType
		t.RecurrenceType = &rt
	}
	return t
}

func checkTask(t entity.Task) error {
	switch {
	case !t.Priority.Valid():
		return &repository.ConstraintError{Kind: repository.ConstraintCheck, Constraint: "tasks_priority_check"}
	case !t.Status.Valid():
		return &repository.ConstraintError{Kind: repository.ConstraintCheck, Constraint: "tasks_status_check"}
	case t.RecurrenceType != nil && !t.RecurrenceType.Valid():
		return &repository.ConstraintError{Kind: repository.ConstraintCheck, Constraint: "tasks_recurrence_type_check"}
	}
	return nil
}

func (r *TaskRepository) Create(_ context.Context, t *entity.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[t.UserID]; !ok {
		return &repository.ConstraintError{Kind: repository.ConstraintForeignKey, Constraint: "tasks_user_id_fkey"}
	}
	if err := checkTask(*t); err != nil {
		return err
	}
	row := cloneTask(*t)
	row.ID = uuid.NewString()
	row.Deadline = row.Deadline.UTC()
	row.CreatedAt = r.s.stamp(r.lastTaskStamp())
	row.UpdatedAt = row.CreatedAt
	r.s.tasks[row.ID] = row
	*t = cloneTask(row)
	return nil
}

func (r *TaskRepository) lastTaskStamp() time.Time {
	var last time.Time
	for _, t := range r.s.tasks {
		if t.CreatedAt.After(last) {
			last = t.CreatedAt
		}
	}
	return last
}

func (r *TaskRepository) owned(id, ownerID string) (entity.Task, bool) {
	t, ok := r.s.tasks[id]
	if !ok || t.UserID != ownerID {
		return entity.Task{}, false
	}
	return t, true
}

func (r *TaskRepository) List(_ context.Context, ownerID string, f entity.TaskFilter) ([]entity.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.Task, 0)
	for _, t := range r.s.tasks {
		if t.UserID == ownerID && f.Match(t) {
			out = append(out, cloneTask(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return entity.TaskLess(out[i], out[j]) })
	return out, nil
}

func (r *TaskRepository) Get(_ context.Context, id, ownerID string) (*entity.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.owned(id, ownerID)
	if !ok {
		return nil, repository.ErrNotFound
	}
	t = cloneTask(t)
	return &t, nil
}

func (r *TaskRepository) Update(_ context.Context, id, ownerID string, set []entity.Assignment) (*entity.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.owned(id, ownerID)
	if !ok {
		return nil, repository.ErrNotFound
	}
	t = cloneTask(t)
	applied, err := applyTask(&t, set)
	if err != nil {
		return nil, err
	}
	if applied == 0 {
		return nil, fmt.Errorf("update task: no assignments")
	}
	if err := checkTask(t); err != nil {
		return nil, err
	}
	t.UpdatedAt = r.s.stamp(t.UpdatedAt)
	r.s.tasks[id] = t
	t = cloneTask(t)
	return &t, nil
}

func applyTask(t *entity.Task, set []entity.Assignment) (int, error) {
	applied := 0
	for _, a := range set {
		ok := true
		switch a.Column {
		case entity.TaskColSubject:
			t.Subject, ok = a.Value.(string)
		case entity.TaskColTitle:
			t.Title, ok = a.Value.(string)
		case entity.TaskColDescription:
			var v *string
			v, ok = a.Value.(*string)
			t.Description = cloneString(v)
		case entity.TaskColDeadline:
			var v time.Time
			v, ok = a.Value.(time.Time)
			t.Deadline = v.UTC()
		case entity.TaskColPriority:
			var v string
			v, ok = a.Value.(string)
			t.Priority = entity.Priority(v)
		case entity.TaskColStatus:
			var v string
			v, ok = a.Value.(string)
			t.Status = entity.Status(v)
		case entity.TaskColIsRecurring:
			t.IsRecurring, ok = a.Value.(bool)
		case entity.TaskColRecurrenceType:
			var v *string
			v, ok = a.Value.(*string)
			t.RecurrenceType = nil
			if v != nil {
				rt := entity.RecurrenceType(*v)
				t.RecurrenceType = &rt
			}
		default:
			continue
		}
		if !ok {
			return 0, fmt.Errorf("update task: unexpected %T for column %s", a.Value, a.Column)
		}
		applied++
	}
	return applied, nil
}

func (r *TaskRepository) Delete(_ context.Context, id, ownerID string) (*entity.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.owned(id, ownerID)
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.s.tasks, id)
	return &t, nil
}

func (r *TaskRepository) FindOverdue(_ context.Context, ownerID string, now time.Time) ([]entity.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.Task, 0)
	for _, t := range r.s.tasks {
		if t.UserID == ownerID && t.IsOverdue(now) {
			out = append(out, cloneTask(t))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Deadline.Equal(out[j].Deadline) {
			return out[i].Deadline.Before(out[j].Deadline)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
