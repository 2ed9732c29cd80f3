package repository

import (
	"context"

	"github.com/oksasatya/student-planner-api/internal/domain/entity"
)

// TimetableRepository persists timetable entries, owner scoped like TaskRepository.
type TimetableRepository interface {
	Create(ctx context.Context, e *entity.TimetableEntry) error
	List(ctx context.Context, ownerID string) ([]entity.TimetableEntry, error)
	Get(ctx context.Context, id, ownerID string) (*entity.TimetableEntry, error)
	Update(ctx context.Context, id, ownerID string, set []entity.Assignment) (*entity.TimetableEntry, error)
	Delete(ctx context.Context, id, ownerID string) (*entity.TimetableEntry, error)
	// Subjects lists the distinct subjects of the owner's entries in ascending order.
	Subjects(ctx context.Context, ownerID string) ([]string, error)
}
