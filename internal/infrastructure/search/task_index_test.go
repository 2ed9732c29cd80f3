package search

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/oksasatya/student-planner-api/internal/domain/entity"
)

func TestSearchQueryFiltersOnOwner(t *testing.T) {
	b, err := json.Marshal(searchQuery("owner-1", "essay", 5))
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	for _, want := range []string{`"term":{"user_id":"owner-1"}`, `"title^2"`, `"size":5`, `"query":"essay"`} {
		if !strings.Contains(s, want) {
			t.Fatalf("query %s missing %s", s, want)
		}
	}
}

func TestTaskDocument(t *testing.T) {
	desc := "read chapter 3"
	task := &entity.Task{
		ID:          "t1",
		UserID:      "u1",
		Subject:     "History",
		Title:       "Reading",
		Description: &desc,
		Deadline:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Priority:    entity.PriorityHigh,
		Status:      entity.StatusTodo,
	}
	doc := taskDocument(task)
	if doc["user_id"] != "u1" || doc["priority"] != "high" || doc["description"] != desc {
		t.Fatalf("unexpected document: %v", doc)
	}
	if doc["deadline"] != "2026-03-01T12:00:00Z" {
		t.Fatalf("deadline = %v", doc["deadline"])
	}

	task.Description = nil
	if _, ok := taskDocument(task)["description"]; ok {
		t.Fatal("absent description should not be indexed")
	}
}
