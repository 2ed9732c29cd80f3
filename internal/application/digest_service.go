package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-planner-api/config"
	repo "github.com/oksasatya/student-planner-api/internal/domain/repository"
	"github.com/oksasatya/student-planner-api/pkg/mailer"
	tpl "github.com/oksasatya/student-planner-api/pkg/mailer/templates"
)

// JobPublisher puts a JSON message on the mail queue.
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// DigestService mails every user the list of their overdue tasks.
type DigestService struct {
	Users    repo.UserRepository
	Tasks    repo.TaskRepository
	Pub      JobPublisher
	Cfg      *config.Config
	Location *time.Location
	Logger   *logrus.Logger
}

func NewDigestService(users repo.UserRepository, tasks repo.TaskRepository, pub JobPublisher, cfg *config.Config, loc *time.Location, logger *logrus.Logger) *DigestService {
	return &DigestService{Users: users, Tasks: tasks, Pub: pub, Cfg: cfg, Location: loc, Logger: logger}
}

// Run evaluates overdue tasks at now and publishes one job per user that has any.
// It returns the number of jobs published.
func (s *DigestService) Run(ctx context.Context, now time.Time) (int, error) {
	users, err := s.Users.List(ctx)
	if err != nil {
		return 0, err
	}
	sent := 0
	for _, u := range users {
		overdue, err := s.Tasks.FindOverdue(ctx, u.ID, now)
		if err != nil {
			return sent, fmt.Errorf("overdue for %s: %w", u.ID, err)
		}
		if len(overdue) == 0 {
			continue
		}
		data := tpl.NewOverdueDigestData(s.Cfg, u.Name, u.Email, overdue,
			tpl.WithTime(now),
			tpl.WithLocation(s.Location),
		)
		job := mailer.EmailJob{To: u.Email, Template: tpl.OverdueDigest, Data: data}
		if err := s.Pub.PublishJSON(ctx, job); err != nil {
			return sent, fmt.Errorf("publish digest for %s: %w", u.ID, err)
		}
		sent++
		if s.Logger != nil {
			s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "overdue": len(overdue)}).Debug("digest enqueued")
		}
	}
	return sent, nil
}
