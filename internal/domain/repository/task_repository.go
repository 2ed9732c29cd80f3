package repository

import (
	"context"
	"time"

	"github.com/oksasatya/student-planner-api/internal/domain/entity"
)

// TaskRepository persists tasks. Every read and write except Create is scoped
// by the owning user id; a row owned by someone else behaves as missing (ErrNotFound).
type TaskRepository interface {
	// Create inserts t and fills in its generated id and timestamps.
	Create(ctx context.Context, t *entity.Task) error
	List(ctx context.Context, ownerID string, f entity.TaskFilter) ([]entity.Task, error)
	Get(ctx context.Context, id, ownerID string) (*entity.Task, error)
	Update(ctx context.Context, id, ownerID string, set []entity.Assignment) (*entity.Task, error)
	Delete(ctx context.Context, id, ownerID string) (*entity.Task, error)
	// FindOverdue returns unfinished tasks with a deadline before now, earliest first.
	FindOverdue(ctx context.Context, ownerID string, now time.Time) ([]entity.Task, error)
}
