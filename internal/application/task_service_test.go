package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oksasatya/student-planner-api/internal/domain/entity"
	"github.com/oksasatya/student-planner-api/internal/infrastructure/memory"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func seedUser(t *testing.T, st *memory.Store, email string) string {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", Name: "Test"}
	if err := st.Users().Create(context.Background(), u); err != nil {
		t.Fatal(err)
	}
	return u.ID
}

func newTaskService(st *memory.Store, now time.Time) *TaskService {
	svc := NewTaskService(st.Tasks(), nil, nil)
	svc.Now = func() time.Time { return now }
	return svc
}

type fakeIndexer struct {
	indexed map[string]bool
	hits    []string
	size    int
}

func (f *fakeIndexer) IndexTask(_ context.Context, t *entity.Task) error {
	if f.indexed == nil {
		f.indexed = map[string]bool{}
	}
	f.indexed[t.ID] = true
	return nil
}

func (f *fakeIndexer) DeleteTask(_ context.Context, id string) error {
	delete(f.indexed, id)
	return nil
}

func (f *fakeIndexer) SearchTaskIDs(_ context.Context, _, _ string, size int) ([]string, error) {
	f.size = size
	return f.hits, nil
}

func TestCreateDefaultsStatus(t *testing.T) {
	st := memory.NewStore()
	uid := seedUser(t, st, "a@example.com")
	svc := newTaskService(st, t0)

	task, err := svc.Create(context.Background(), uid, CreateTaskInput{Title: "Essay", Deadline: t0, Priority: entity.PriorityMedium})
	if err != nil {
		t.Fatal(err)
	}
	if task.Status != entity.StatusTodo || task.ID == "" || task.UserID != uid {
		t.Fatalf("unexpected task %+v", task)
	}
}

func TestOverdueFollowsStatusAndClock(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	uid := seedUser(t, st, "a@example.com")
	svc := newTaskService(st, t0)

	past, _ := svc.Create(ctx, uid, CreateTaskInput{Title: "past", Deadline: t0.Add(-time.Hour), Priority: entity.PriorityLow})
	_, _ = svc.Create(ctx, uid, CreateTaskInput{Title: "future", Deadline: t0.Add(time.Hour), Priority: entity.PriorityLow})

	got, err := svc.FindOverdue(ctx, uid)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != past.ID {
		t.Fatalf("overdue = %+v", got)
	}

	if _, err := svc.Update(ctx, past.ID, uid, entity.TaskPatch{Status: entity.Some(entity.StatusDone)}); err != nil {
		t.Fatal(err)
	}
	got, _ = svc.FindOverdue(ctx, uid)
	if len(got) != 0 {
		t.Fatalf("done task still overdue: %+v", got)
	}

	svc.Now = func() time.Time { return t0.Add(2 * time.Hour) }
	got, _ = svc.FindOverdue(ctx, uid)
	if len(got) != 1 || got[0].Title != "future" {
		t.Fatalf("clock change not observed: %+v", got)
	}
}

func TestUpdateRejectsEmptyPatch(t *testing.T) {
	st := memory.NewStore()
	uid := seedUser(t, st, "a@example.com")
	svc := newTaskService(st, t0)
	task, _ := svc.Create(context.Background(), uid, CreateTaskInput{Title: "x", Deadline: t0, Priority: entity.PriorityLow})

	if _, err := svc.Update(context.Background(), task.ID, uid, entity.TaskPatch{}); !errors.Is(err, ErrInvalidUpdate) {
		t.Fatalf("err = %v", err)
	}
}

func TestUpdateAndDeleteAreOwnerScoped(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	a := seedUser(t, st, "a@example.com")
	b := seedUser(t, st, "b@example.com")
	svc := newTaskService(st, t0)
	task, _ := svc.Create(ctx, a, CreateTaskInput{Title: "mine", Deadline: t0, Priority: entity.PriorityLow})

	if _, err := svc.Update(ctx, task.ID, b, entity.TaskPatch{Title: entity.Some("theirs")}); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("foreign update err = %v", err)
	}
	if _, err := svc.Get(ctx, task.ID, b); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("foreign get err = %v", err)
	}

	deleted, err := svc.Delete(ctx, task.ID, a)
	if err != nil || deleted.Title != "mine" {
		t.Fatalf("delete = %+v, %v", deleted, err)
	}
	if _, err := svc.Delete(ctx, task.ID, a); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("second delete err = %v", err)
	}
}

func TestUpdateClearsDescription(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	uid := seedUser(t, st, "a@example.com")
	svc := newTaskService(st, t0)
	desc := "notes"
	task, _ := svc.Create(ctx, uid, CreateTaskInput{Title: "x", Description: &desc, Deadline: t0, Priority: entity.PriorityLow})

	updated, err := svc.Update(ctx, task.ID, uid, entity.TaskPatch{Description: entity.Optional[*string]{Set: true, Null: true}})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Description != nil {
		t.Fatalf("description = %q", *updated.Description)
	}
	if updated.Title != "x" {
		t.Fatalf("untouched field changed: %q", updated.Title)
	}
}

func TestSearchResolvesOwnedTasks(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	a := seedUser(t, st, "a@example.com")
	b := seedUser(t, st, "b@example.com")
	idx := &fakeIndexer{}
	svc := newTaskService(st, t0)
	svc.Indexer = idx

	mine, _ := svc.Create(ctx, a, CreateTaskInput{Title: "Lab report", Deadline: t0, Priority: entity.PriorityLow})
	theirs, _ := svc.Create(ctx, b, CreateTaskInput{Title: "Lab report", Deadline: t0, Priority: entity.PriorityLow})
	if !idx.indexed[mine.ID] {
		t.Fatal("create did not index")
	}
	idx.hits = []string{"stale-id", theirs.ID, mine.ID}

	got, err := svc.Search(ctx, a, "lab", 500)
	if err != nil {
		t.Fatal(err)
	}
	if idx.size != 50 {
		t.Fatalf("size = %d, want capped at 50", idx.size)
	}
	if len(got) != 1 || got[0].ID != mine.ID {
		t.Fatalf("search = %+v", got)
	}

	if _, err := svc.Delete(ctx, mine.ID, a); err != nil {
		t.Fatal(err)
	}
	if idx.indexed[mine.ID] {
		t.Fatal("delete did not unindex")
	}
}

func TestSearchWithoutIndexer(t *testing.T) {
	svc := newTaskService(memory.NewStore(), t0)
	got, err := svc.Search(context.Background(), "u", "anything", 0)
	if err != nil || len(got) != 0 {
		t.Fatalf("search = %v, %v", got, err)
	}
}
