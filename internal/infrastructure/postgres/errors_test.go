package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/student-planner-api/internal/domain/repository"
)

func TestTranslate(t *testing.T) {
	if translate(nil) != nil {
		t.Fatal("nil must stay nil")
	}
	if !errors.Is(translate(fmt.Errorf("scan: %w", pgx.ErrNoRows)), repository.ErrNotFound) {
		t.Fatal("no rows must become ErrNotFound")
	}

	cases := map[string]repository.ConstraintKind{
		"23505": repository.ConstraintUnique,
		"23503": repository.ConstraintForeignKey,
		"23514": repository.ConstraintCheck,
	}
	for code, kind := range cases {
		err := translate(&pgconn.PgError{Code: code, ConstraintName: "c"})
		if !repository.IsConstraint(err, kind) {
			t.Fatalf("code %s: got %v", code, err)
		}
	}

	other := errors.New("connection reset")
	if translate(other) != other {
		t.Fatal("unrelated errors pass through")
	}
}
