package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/student-planner-api/internal/domain/entity"
	"github.com/oksasatya/student-planner-api/internal/domain/repository"
)

type TaskRepository struct {
	db DBTX
}

func NewTaskRepository(db DBTX) *TaskRepository {
	return &TaskRepository{db: db}
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*entity.Task, error) {
	var (
		t          entity.Task
		priority   string
		status     string
		recurrence *string
	)
	if err := row.Scan(&t.ID, &t.UserID, &t.Subject, &t.Title, &t.Description, &t.Deadline,
		&priority, &status, &t.IsRecurring, &recurrence, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	t.Priority = entity.Priority(priority)
	t.Status = entity.Status(status)
	if recurrence != nil {
		rt := entity.RecurrenceType(*recurrence)
		t.RecurrenceType = &rt
	}
	return &t, nil
}

func collectTasks(rows pgx.Rows) ([]entity.Task, error) {
	defer rows.Close()
	out := make([]entity.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	var recurrence *string
	if t.RecurrenceType != nil {
		s := string(*t.RecurrenceType)
		recurrence = &s
	}
	row := r.db.QueryRow(ctx, `
		INSERT INTO tasks (user_id, subject, title, description, deadline, priority, status, is_recurring, recurrence_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+taskColumns,
		t.UserID, t.Subject, t.Title, t.Description, t.Deadline,
		string(t.Priority), string(t.Status), t.IsRecurring, recurrence)

	created, err := scanTask(row)
	if err != nil {
		return translate(err)
	}
	*t = *created
	return nil
}

func (r *TaskRepository) List(ctx context.Context, ownerID string, f entity.TaskFilter) ([]entity.Task, error) {
	q, args := buildTaskListQuery(ownerID, f)
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, translate(err)
	}
	return collectTasks(rows)
}

func (r *TaskRepository) Get(ctx context.Context, id, ownerID string) (*entity.Task, error) {
	row := r.db.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1 AND user_id = $2`, id, ownerID)
	t, err := scanTask(row)
	if err != nil {
		return nil, translate(err)
	}
	return t, nil
}

func (r *TaskRepository) Update(ctx context.Context, id, ownerID string, set []entity.Assignment) (*entity.Task, error) {
	q, args, err := buildUpdateQuery("tasks", taskColumns, taskUpdatable, id, ownerID, set)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	t, err := scanTask(r.db.QueryRow(ctx, q, args...))
	if err != nil {
		return nil, translate(err)
	}
	return t, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id, ownerID string) (*entity.Task, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2 RETURNING `+taskColumns, id, ownerID)
	t, err := scanTask(row)
	if err != nil {
		return nil, translate(err)
	}
	return t, nil
}

func (r *TaskRepository) FindOverdue(ctx context.Context, ownerID string, now time.Time) ([]entity.Task, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE user_id = $1
		  AND status <> 'done'
		  AND deadline < $2
		ORDER BY deadline ASC, created_at ASC
	`, ownerID, now)
	if err != nil {
		return nil, translate(err)
	}
	return collectTasks(rows)
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
