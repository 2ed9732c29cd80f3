package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-planner-api/internal/domain/entity"
	repo "github.com/oksasatya/student-planner-api/internal/domain/repository"
)

// TaskIndexer keeps a full-text index of tasks. Index failures never fail the task operation.
type TaskIndexer interface {
	IndexTask(ctx context.Context, t *entity.Task) error
	DeleteTask(ctx context.Context, id string) error
	SearchTaskIDs(ctx context.Context, ownerID, q string, size int) ([]string, error)
}

type TaskService struct {
	Repo    repo.TaskRepository
	Indexer TaskIndexer
	Logger  *logrus.Logger
	Now     func() time.Time
}

func NewTaskService(r repo.TaskRepository, indexer TaskIndexer, logger *logrus.Logger) *TaskService {
	return &TaskService{Repo: r, Indexer: indexer, Logger: logger, Now: time.Now}
}

type CreateTaskInput struct {
	Subject        string
	Title          string
	Description    *string
	Deadline       time.Time
	Priority       entity.Priority
	Status         entity.Status
	IsRecurring    bool
	RecurrenceType *entity.RecurrenceType
}

// Create stores a task owned by ownerID. Status defaults to todo.
func (s *TaskService) Create(ctx context.Context, ownerID string, in CreateTaskInput) (*entity.Task, error) {
	t := &entity.Task{
		UserID:         ownerID,
		Subject:        in.Subject,
		Title:          in.Title,
		Description:    in.Description,
		Deadline:       in.Deadline,
		Priority:       in.Priority,
		Status:         in.Status,
		IsRecurring:    in.IsRecurring,
		RecurrenceType: in.RecurrenceType,
	}
	if t.Status == "" {
		t.Status = entity.StatusTodo
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	s.index(ctx, t)
	return t, nil
}

func (s *TaskService) List(ctx context.Context, ownerID string, f entity.TaskFilter) ([]entity.Task, error) {
	return s.Repo.List(ctx, ownerID, f)
}

func (s *TaskService) Get(ctx context.Context, id, ownerID string) (*entity.Task, error) {
	t, err := s.Repo.Get(ctx, id, ownerID)
	if err != nil {
		return nil, notFoundAs(err, ErrTaskNotFound)
	}
	return t, nil
}

// Update applies the present fields of p. A patch without any recognised field is
// rejected with ErrInvalidUpdate before the store is touched.
func (s *TaskService) Update(ctx context.Context, id, ownerID string, p entity.TaskPatch) (*entity.Task, error) {
	set := p.Assignments()
	if len(set) == 0 {
		return nil, ErrInvalidUpdate
	}
	t, err := s.Repo.Update(ctx, id, ownerID, set)
	if err != nil {
		return nil, notFoundAs(err, ErrTaskNotFound)
	}
	s.index(ctx, t)
	return t, nil
}

// Delete removes the task and returns it as it was.
func (s *TaskService) Delete(ctx context.Context, id, ownerID string) (*entity.Task, error) {
	t, err := s.Repo.Delete(ctx, id, ownerID)
	if err != nil {
		return nil, notFoundAs(err, ErrTaskNotFound)
	}
	if s.Indexer != nil {
		if iErr := s.Indexer.DeleteTask(ctx, t.ID); iErr != nil && s.Logger != nil {
			s.Logger.WithError(iErr).WithField("task_id", t.ID).Warn("task unindex failed")
		}
	}
	return t, nil
}

// FindOverdue is evaluated against the clock on every call.
func (s *TaskService) FindOverdue(ctx context.Context, ownerID string) ([]entity.Task, error) {
	return s.Repo.FindOverdue(ctx, ownerID, s.now())
}

// Search resolves index hits back through the store so only the owner's current tasks are returned.
func (s *TaskService) Search(ctx context.Context, ownerID, q string, size int) ([]entity.Task, error) {
	if s.Indexer == nil {
		return []entity.Task{}, nil
	}
	switch {
	case size <= 0:
		size = 10
	case size > 50:
		size = 50
	}
	ids, err := s.Indexer.SearchTaskIDs(ctx, ownerID, q, size)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Task, 0, len(ids))
	for _, id := range ids {
		t, err := s.Repo.Get(ctx, id, ownerID)
		if errors.Is(err, repo.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, nil
}

func (s *TaskService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *TaskService) index(ctx context.Context, t *entity.Task) {
	if s.Indexer == nil {
		return
	}
	if err := s.Indexer.IndexTask(ctx, t); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("task_id", t.ID).Warn("task index failed")
	}
}
