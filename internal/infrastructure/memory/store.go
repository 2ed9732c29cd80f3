// Package memory is a process-local Record Store with the same contracts as the
// Postgres repositories. It backs STORE_DRIVER=memory and the test suite.
package memory

import (
	"sync"
	"time"

	"github.com/oksasatya/student-planner-api/internal/domain/entity"
)

type Store struct {
	mu      sync.RWMutex
	now     func() time.Time
	users   map[string]entity.User
	tasks   map[string]entity.Task
	entries map[string]entity.TimetableEntry
}

func NewStore() *Store {
	return &Store{
		now:     func() time.Time { return time.Now().UTC() },
		users:   make(map[string]entity.User),
		tasks:   make(map[string]entity.Task),
		entries: make(map[string]entity.TimetableEntry),
	}
}

func (s *Store) Users() *UserRepository          { return &UserRepository{s: s} }
func (s *Store) Tasks() *TaskRepository          { return &TaskRepository{s: s} }
func (s *Store) Timetable() *TimetableRepository { return &TimetableRepository{s: s} }

// stamp returns a strictly increasing timestamp so rows created back to back keep their order.
func (s *Store) stamp(last time.Time) time.Time {
	t := s.now()
	if !t.After(last) {
		t = last.Add(time.Microsecond)
	}
	return t
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
