package application

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-planner-api/internal/domain/entity"
)

// ObjectUploader stores a blob and returns its public URL.
type ObjectUploader interface {
	Upload(ctx context.Context, objectPath, contentType string, body io.Reader) (string, error)
}

type ExportService struct {
	Tasks     *TaskService
	Timetable *TimetableService
	Uploader  ObjectUploader
	Logger    *logrus.Logger
	Now       func() time.Time
}

func NewExportService(tasks *TaskService, timetable *TimetableService, uploader ObjectUploader, logger *logrus.Logger) *ExportService {
	return &ExportService{Tasks: tasks, Timetable: timetable, Uploader: uploader, Logger: logger, Now: time.Now}
}

type Snapshot struct {
	ExportedAt time.Time               `json:"exportedAt"`
	Tasks      []entity.Task           `json:"tasks"`
	Timetable  []entity.TimetableEntry `json:"timetable"`
}

type ExportResult struct {
	URL        string    `json:"url"`
	Object     string    `json:"object"`
	Tasks      int       `json:"tasks"`
	Entries    int       `json:"entries"`
	ExportedAt time.Time `json:"exportedAt"`
}

// Export uploads a JSON snapshot of everything ownerID owns.
func (s *ExportService) Export(ctx context.Context, ownerID string) (*ExportResult, error) {
	if s.Uploader == nil {
		return nil, ErrExportUnavailable
	}
	tasks, err := s.Tasks.List(ctx, ownerID, entity.TaskFilter{})
	if err != nil {
		return nil, err
	}
	entries, err := s.Timetable.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	snap := Snapshot{ExportedAt: now().UTC(), Tasks: tasks, Timetable: entries}
	b, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}
	object := path.Join("exports", ownerID, uuid.NewString()+".json")
	url, err := s.Uploader.Upload(ctx, object, "application/json", bytes.NewReader(b))
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("object", object).Error("export upload failed")
		}
		return nil, err
	}
	return &ExportResult{URL: url, Object: object, Tasks: len(tasks), Entries: len(entries), ExportedAt: snap.ExportedAt}, nil
}
