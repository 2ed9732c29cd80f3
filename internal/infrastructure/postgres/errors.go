package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/student-planner-api/internal/domain/repository"
)

// SQLSTATE codes the store surfaces as constraint violations.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// translate maps driver errors onto repository errors.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return &repository.ConstraintError{Kind: repository.ConstraintUnique, Constraint: pgErr.ConstraintName, Err: err}
		case codeForeignKeyViolation:
			return &repository.ConstraintError{Kind: repository.ConstraintForeignKey, Constraint: pgErr.ConstraintName, Err: err}
		case codeCheckViolation:
			return &repository.ConstraintError{Kind: repository.ConstraintCheck, Constraint: pgErr.ConstraintName, Err: err}
		}
	}
	return err
}
