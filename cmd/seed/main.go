package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/oksasatya/student-planner-api/config"
	"github.com/oksasatya/student-planner-api/internal/application"
	"github.com/oksasatya/student-planner-api/internal/domain/entity"
	pginfra "github.com/oksasatya/student-planner-api/internal/infrastructure/postgres"
	"github.com/oksasatya/student-planner-api/pkg/helpers"
)

// seed creates a demo account with a few tasks and timetable entries.
// Running it again leaves an existing demo account untouched.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()
	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	users := application.NewUserService(pginfra.NewUserRepository(pool), nil, nil, logger)
	tasks := application.NewTaskService(pginfra.NewTaskRepository(pool), nil, logger)
	timetable := application.NewTimetableService(pginfra.NewTimetableRepository(pool), logger)

	const (
		email    = "demo@student-planner.local"
		password = "password123"
	)
	u, err := users.Register(ctx, application.RegisterInput{Email: email, Password: password, Name: "Demo Student"})
	if errors.Is(err, application.ErrEmailTaken) {
		logger.WithField("email", email).Info("demo user already seeded")
		return
	}
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}

	now := time.Now().UTC()
	weekly := entity.RecurrenceWeekly
	seedTasks := []application.CreateTaskInput{
		{Subject: "Mathematics", Title: "Problem set 4", Deadline: now.Add(-24 * time.Hour), Priority: entity.PriorityHigh},
		{Subject: "History", Title: "Essay outline", Deadline: now.Add(72 * time.Hour), Priority: entity.PriorityMedium, Status: entity.StatusInProgress},
		{Subject: "Physics", Title: "Lab report", Deadline: now.Add(72 * time.Hour), Priority: entity.PriorityHigh},
		{Subject: "Mathematics", Title: "Weekly quiz review", Deadline: now.Add(7 * 24 * time.Hour), Priority: entity.PriorityLow, IsRecurring: true, RecurrenceType: &weekly},
	}
	for _, in := range seedTasks {
		if _, err := tasks.Create(ctx, u.ID, in); err != nil {
			log.Fatalf("failed to seed task %q: %v", in.Title, err)
		}
	}

	room := "B-204"
	seedEntries := []application.CreateEntryInput{
		{Subject: "Mathematics", DayOfWeek: 1, StartTime: "09:00", EndTime: "10:30", Location: &room},
		{Subject: "Physics", DayOfWeek: 2, StartTime: "13:00", EndTime: "14:30"},
		{Subject: "Mathematics", DayOfWeek: 4, StartTime: "09:00", EndTime: "10:30", Location: &room},
	}
	for _, in := range seedEntries {
		if _, err := timetable.Create(ctx, u.ID, in); err != nil {
			log.Fatalf("failed to seed timetable entry %q: %v", in.Subject, err)
		}
	}
	logger.WithField("email", email).WithField("password", password).
		WithField("tasks", len(seedTasks)).WithField("entries", len(seedEntries)).Info("seeded demo user")
}
