package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-planner-api/internal/domain/entity"
	repo "github.com/oksasatya/student-planner-api/internal/domain/repository"
)

// TimetableService does not reject overlapping entries or end times before start times.
type TimetableService struct {
	Repo   repo.TimetableRepository
	Logger *logrus.Logger
}

func NewTimetableService(r repo.TimetableRepository, logger *logrus.Logger) *TimetableService {
	return &TimetableService{Repo: r, Logger: logger}
}

type CreateEntryInput struct {
	Subject   string
	DayOfWeek int
	StartTime string
	EndTime   string
	Location  *string
}

func (s *TimetableService) Create(ctx context.Context, ownerID string, in CreateEntryInput) (*entity.TimetableEntry, error) {
	e := &entity.TimetableEntry{
		UserID:    ownerID,
		Subject:   in.Subject,
		DayOfWeek: in.DayOfWeek,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Location:  in.Location,
	}
	if err := s.Repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *TimetableService) List(ctx context.Context, ownerID string) ([]entity.TimetableEntry, error) {
	return s.Repo.List(ctx, ownerID)
}

func (s *TimetableService) Get(ctx context.Context, id, ownerID string) (*entity.TimetableEntry, error) {
	e, err := s.Repo.Get(ctx, id, ownerID)
	if err != nil {
		return nil, notFoundAs(err, ErrEntryNotFound)
	}
	return e, nil
}

func (s *TimetableService) Update(ctx context.Context, id, ownerID string, p entity.TimetablePatch) (*entity.TimetableEntry, error) {
	set := p.Assignments()
	if len(set) == 0 {
		return nil, ErrInvalidUpdate
	}
	e, err := s.Repo.Update(ctx, id, ownerID, set)
	if err != nil {
		return nil, notFoundAs(err, ErrEntryNotFound)
	}
	return e, nil
}

func (s *TimetableService) Delete(ctx context.Context, id, ownerID string) (*entity.TimetableEntry, error) {
	e, err := s.Repo.Delete(ctx, id, ownerID)
	if err != nil {
		return nil, notFoundAs(err, ErrEntryNotFound)
	}
	return e, nil
}

// Subjects returns the owner's distinct subjects for autocomplete.
func (s *TimetableService) Subjects(ctx context.Context, ownerID string) ([]string, error) {
	return s.Repo.Subjects(ctx, ownerID)
}
