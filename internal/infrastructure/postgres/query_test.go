package postgres

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/oksasatya/student-planner-api/internal/domain/entity"
)

func TestBuildTaskListQueryNoFilters(t *testing.T) {
	q, args := buildTaskListQuery("u1", entity.TaskFilter{})
	if !strings.Contains(q, "WHERE user_id = $1 ORDER BY") {
		t.Fatalf("query = %s", q)
	}
	if len(args) != 1 || args[0] != "u1" {
		t.Fatalf("args = %v", args)
	}
}

func TestBuildTaskListQueryNumbersPlaceholdersInOrder(t *testing.T) {
	pr := entity.PriorityHigh
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	q, args := buildTaskListQuery("u1", entity.TaskFilter{Priority: &pr, StartDate: &start, EndDate: &end})
	want := "WHERE user_id = $1 AND priority = $2 AND deadline >= $3 AND deadline <= $4"
	if !strings.Contains(q, want) {
		t.Fatalf("query = %s\nwant fragment %s", q, want)
	}
	if len(args) != 4 || args[1] != "high" || args[2] != start || args[3] != end {
		t.Fatalf("args = %v", args)
	}
	if !strings.HasSuffix(q, "ORDER BY deadline ASC, "+priorityRank+" DESC, created_at ASC") {
		t.Fatalf("ordering missing: %s", q)
	}
}

func TestBuildUpdateQuery(t *testing.T) {
	set := []entity.Assignment{
		{Column: entity.TaskColTitle, Value: "HW2"},
		{Column: "user_id", Value: "attacker"},
		{Column: entity.TaskColStatus, Value: "done"},
	}
	q, args, err := buildUpdateQuery("tasks", taskColumns, taskUpdatable, "t1", "u1", set)
	if err != nil {
		t.Fatal(err)
	}
	want := "UPDATE tasks SET title = $1, status = $2, updated_at = now() WHERE id = $3 AND user_id = $4 RETURNING "
	if !strings.HasPrefix(q, want) {
		t.Fatalf("query = %s", q)
	}
	if len(args) != 4 || args[0] != "HW2" || args[1] != "done" || args[2] != "t1" || args[3] != "u1" {
		t.Fatalf("args = %v", args)
	}
}

func TestBuildUpdateQueryNothingAllowed(t *testing.T) {
	_, _, err := buildUpdateQuery("tasks", taskColumns, taskUpdatable, "t1", "u1", []entity.Assignment{{Column: "id", Value: "x"}})
	if !errors.Is(err, errNoAssignments) {
		t.Fatalf("err = %v", err)
	}
}
