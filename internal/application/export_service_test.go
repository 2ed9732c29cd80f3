package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/oksasatya/student-planner-api/internal/domain/entity"
	"github.com/oksasatya/student-planner-api/internal/infrastructure/memory"
)

type memUploader struct {
	path string
	body []byte
}

func (u *memUploader) Upload(_ context.Context, objectPath, _ string, body io.Reader) (string, error) {
	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	u.path, u.body = objectPath, b
	return "https://storage.example/" + objectPath, nil
}

func TestExportSnapshot(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	uid := seedUser(t, st, "a@example.com")
	tasks := newTaskService(st, t0)
	timetable := NewTimetableService(st.Timetable(), nil)
	_, _ = tasks.Create(ctx, uid, CreateTaskInput{Title: "Essay", Deadline: t0, Priority: entity.PriorityLow})
	_, _ = timetable.Create(ctx, uid, CreateEntryInput{Subject: "Math", DayOfWeek: 1, StartTime: "08:00", EndTime: "09:00"})

	up := &memUploader{}
	svc := NewExportService(tasks, timetable, up, nil)
	res, err := svc.Export(ctx, uid)
	if err != nil {
		t.Fatal(err)
	}
	if res.Tasks != 1 || res.Entries != 1 {
		t.Fatalf("result = %+v", res)
	}
	if !strings.HasPrefix(up.path, "exports/"+uid+"/") || !strings.HasSuffix(res.URL, up.path) {
		t.Fatalf("object %q url %q", up.path, res.URL)
	}
	var snap Snapshot
	if err := json.Unmarshal(up.body, &snap); err != nil {
		t.Fatal(err)
	}
	if len(snap.Tasks) != 1 || snap.Tasks[0].Title != "Essay" || len(snap.Timetable) != 1 {
		t.Fatalf("snapshot = %+v", snap)
	}
}

func TestExportWithoutStorage(t *testing.T) {
	st := memory.NewStore()
	svc := NewExportService(newTaskService(st, t0), NewTimetableService(st.Timetable(), nil), nil, nil)
	if _, err := svc.Export(context.Background(), "u"); !errors.Is(err, ErrExportUnavailable) {
		t.Fatalf("err = %v", err)
	}
}
