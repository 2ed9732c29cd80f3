package postgres

import (
	"context"
	"fmt"

	"github.com/oksasatya/student-planner-api/internal/domain/entity"
	"github.com/oksasatya/student-planner-api/internal/domain/repository"
)

type TimetableRepository struct {
	db DBTX
}

func NewTimetableRepository(db DBTX) *TimetableRepository {
	return &TimetableRepository{db: db}
}

func scanEntry(row rowScanner) (*entity.TimetableEntry, error) {
	var e entity.TimetableEntry
	if err := row.Scan(&e.ID, &e.UserID, &e.Subject, &e.DayOfWeek, &e.StartTime, &e.EndTime,
		&e.Location, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *TimetableRepository) Create(ctx context.Context, e *entity.TimetableEntry) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO timetable_entries (user_id, subject, day_of_week, start_time, end_time, location)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+entryColumns,
		e.UserID, e.Subject, e.DayOfWeek, e.StartTime, e.EndTime, e.Location)

	created, err := scanEntry(row)
	if err != nil {
		return translate(err)
	}
	*e = *created
	return nil
}

func (r *TimetableRepository) List(ctx context.Context, ownerID string) ([]entity.TimetableEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+entryColumns+`
		FROM timetable_entries
		WHERE user_id = $1
		ORDER BY day_of_week ASC, start_time ASC, created_at ASC
	`, ownerID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	out := make([]entity.TimetableEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (r *TimetableRepository) Get(ctx context.Context, id, ownerID string) (*entity.TimetableEntry, error) {
	row := r.db.QueryRow(ctx, `SELECT `+entryColumns+` FROM timetable_entries WHERE id = $1 AND user_id = $2`, id, ownerID)
	e, err := scanEntry(row)
	if err != nil {
		return nil, translate(err)
	}
	return e, nil
}

func (r *TimetableRepository) Update(ctx context.Context, id, ownerID string, set []entity.Assignment) (*entity.TimetableEntry, error) {
	q, args, err := buildUpdateQuery("timetable_entries", entryColumns, entryUpdatable, id, ownerID, set)
	if err != nil {
		return nil, fmt.Errorf("update timetable entry: %w", err)
	}
	e, err := scanEntry(r.db.QueryRow(ctx, q, args...))
	if err != nil {
		return nil, translate(err)
	}
	return e, nil
}

func (r *TimetableRepository) Delete(ctx context.Context, id, ownerID string) (*entity.TimetableEntry, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM timetable_entries WHERE id = $1 AND user_id = $2 RETURNING `+entryColumns, id, ownerID)
	e, err := scanEntry(row)
	if err != nil {
		return nil, translate(err)
	}
	return e, nil
}

func (r *TimetableRepository) Subjects(ctx context.Context, ownerID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT subject COLLATE "C" AS subject
		FROM timetable_entries
		WHERE user_id = $1
		ORDER BY subject ASC
	`, ownerID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

var _ repository.TimetableRepository = (*TimetableRepository)(nil)
