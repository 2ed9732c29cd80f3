package entity

import (
	"encoding/json"
	"sort"
	"testing"
	"time"
)

var base = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestPriorityRank(t *testing.T) {
	if !(PriorityHigh.Rank() > PriorityMedium.Rank() && PriorityMedium.Rank() > PriorityLow.Rank()) {
		t.Fatal("rank must order high > medium > low")
	}
	if Priority("urgent").Valid() {
		t.Fatal("unknown priority reported valid")
	}
}

func TestIsOverdue(t *testing.T) {
	task := Task{Deadline: base, Status: StatusTodo}
	cases := []struct {
		name string
		now  time.Time
		st   Status
		want bool
	}{
		{"after deadline", base.Add(time.Second), StatusTodo, true},
		{"in progress after deadline", base.Add(time.Hour), StatusInProgress, true},
		{"exactly at deadline", base, StatusTodo, false},
		{"before deadline", base.Add(-time.Second), StatusTodo, false},
		{"done", base.Add(time.Hour), StatusDone, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task.Status = tc.st
			if got := task.IsOverdue(tc.now); got != tc.want {
				t.Fatalf("IsOverdue = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTaskFilterMatch(t *testing.T) {
	task := Task{Deadline: base, Priority: PriorityHigh, Status: StatusTodo}
	done := StatusDone
	high := PriorityHigh
	start := base
	end := base
	before := base.Add(-time.Hour)

	if !(TaskFilter{}).Match(task) {
		t.Fatal("empty filter must match everything")
	}
	if (TaskFilter{Status: &done}).Match(task) {
		t.Fatal("status filter ignored")
	}
	if !(TaskFilter{Priority: &high, StartDate: &start, EndDate: &end}).Match(task) {
		t.Fatal("date bounds must be inclusive")
	}
	if (TaskFilter{EndDate: &before}).Match(task) {
		t.Fatal("end bound ignored")
	}
}

func TestTaskLess(t *testing.T) {
	tasks := []Task{
		{Title: "low-same", Deadline: base, Priority: PriorityLow},
		{Title: "later", Deadline: base.Add(time.Hour), Priority: PriorityHigh},
		{Title: "high-same", Deadline: base, Priority: PriorityHigh},
		{Title: "medium-same", Deadline: base, Priority: PriorityMedium},
	}
	sort.Slice(tasks, func(i, j int) bool { return TaskLess(tasks[i], tasks[j]) })
	want := []string{"high-same", "medium-same", "low-same", "later"}
	for i, w := range want {
		if tasks[i].Title != w {
			t.Fatalf("position %d = %s, want %s", i, tasks[i].Title, w)
		}
	}
}

func TestTaskPatchAssignments(t *testing.T) {
	var p TaskPatch
	body := `{"status":"done","title":"HW1","userId":"someone-else","id":"x","recurrenceType":null}`
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatal(err)
	}
	got := p.Assignments()
	if len(got) != 3 {
		t.Fatalf("assignments = %+v", got)
	}
	if got[0].Column != TaskColTitle || got[1].Column != TaskColStatus || got[2].Column != TaskColRecurrenceType {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[1].Value != "done" {
		t.Fatalf("status value = %#v", got[1].Value)
	}
	if rt, ok := got[2].Value.(*string); !ok || rt != nil {
		t.Fatalf("null recurrenceType should clear the column, got %#v", got[2].Value)
	}

	if n := len((TaskPatch{}).Assignments()); n != 0 {
		t.Fatalf("empty patch produced %d assignments", n)
	}
}
