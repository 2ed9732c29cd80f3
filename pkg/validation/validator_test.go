package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type sample struct {
	Name  string `json:"name" binding:"required,notblank"`
	Start string `json:"startTime" binding:"required,hhmm"`
	Day   *int   `json:"dayOfWeek" binding:"required,gte=0,lte=6"`
}

func TestStructErrorsUseJSONNames(t *testing.T) {
	Init()
	day := 9
	err := binding.Validator.ValidateStruct(&sample{Name: "  ", Start: "24:00", Day: &day})
	details := ToDetails(err)
	for _, field := range []string{"name", "startTime", "dayOfWeek"} {
		if details[field] == "" {
			t.Fatalf("missing %q in %v", field, details)
		}
	}
	if details["name"] != "must not be blank" {
		t.Fatalf("name: %q", details["name"])
	}
}

func TestSundayPassesRequired(t *testing.T) {
	Init()
	day := 0
	if err := binding.Validator.ValidateStruct(&sample{Name: "Math", Start: "7:30", Day: &day}); err != nil {
		t.Fatalf("unexpected %v", err)
	}
}

func TestVar(t *testing.T) {
	if d := Var("status", "done", "oneof=todo in-progress done"); d != nil {
		t.Fatalf("valid value reported %v", d)
	}
	d := Var("status", "archived", "oneof=todo in-progress done")
	if d["status"] != "must be one of: todo, in-progress, done" {
		t.Fatalf("details %v", d)
	}
}

func TestMerge(t *testing.T) {
	var d map[string]string
	d = Merge(d, nil)
	if d != nil {
		t.Fatal("merging nothing allocated")
	}
	d = Merge(d, map[string]string{"a": "1"})
	d = Merge(d, map[string]string{"b": "2"})
	if len(d) != 2 {
		t.Fatalf("merged %v", d)
	}
}
