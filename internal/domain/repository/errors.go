package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound means no row matched the (id, owner) pair.
var ErrNotFound = errors.New("record not found")

type ConstraintKind string

const (
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintForeignKey ConstraintKind = "foreign_key"
	ConstraintCheck      ConstraintKind = "check"
)

// ConstraintError is returned when the store rejects a write.
type ConstraintError struct {
	Kind       ConstraintKind
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%s constraint %q violated", e.Kind, e.Constraint)
	}
	return fmt.Sprintf("%s constraint violated", e.Kind)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// IsConstraint reports whether err is a ConstraintError of the given kind.
func IsConstraint(err error, kind ConstraintKind) bool {
	var ce *ConstraintError
	return errors.As(err, &ce) && ce.Kind == kind
}
