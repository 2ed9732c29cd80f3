package application

import (
	"errors"

	"github.com/oksasatya/student-planner-api/internal/domain/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")

	ErrTaskNotFound  = errors.New("task not found")
	ErrEntryNotFound = errors.New("timetable entry not found")
	// ErrInvalidUpdate is returned when an update carries no recognised field.
	ErrInvalidUpdate = errors.New("no valid fields to update")

	ErrExportUnavailable = errors.New("export storage not configured")
)

// notFoundAs replaces the store's not-found with the caller facing sentinel.
func notFoundAs(err, sentinel error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return sentinel
	}
	return err
}
