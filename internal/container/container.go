// Package container holds the constructed infrastructure shared by the router modules.
// Optional collaborators (Redis, Elasticsearch, GCS, RabbitMQ) stay nil when not configured.
package container

import (
	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-planner-api/config"
	"github.com/oksasatya/student-planner-api/internal/application"
	"github.com/oksasatya/student-planner-api/internal/domain/repository"
	"github.com/oksasatya/student-planner-api/internal/infrastructure/memory"
	pginfra "github.com/oksasatya/student-planner-api/internal/infrastructure/postgres"
	"github.com/oksasatya/student-planner-api/internal/infrastructure/search"
	"github.com/oksasatya/student-planner-api/pkg/helpers"
)

type Container struct {
	Config *config.Config
	Logger *logrus.Logger

	PGPool    *pgxpool.Pool
	Redis     *redis.Client
	GCS       *storage.Client
	ES        *elasticsearch.Client
	RabbitPub *helpers.RabbitPublisher
	JWT       *helpers.JWTManager

	Users     repository.UserRepository
	Tasks     repository.TaskRepository
	Timetable repository.TimetableRepository
}

func New(cfg *config.Config, logger *logrus.Logger) *Container {
	return &Container{
		Config: cfg,
		Logger: logger,
		JWT:    helpers.NewJWTManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.AccessTTL, cfg.RefreshTTL),
	}
}

// UsePostgres backs the repositories with the pool.
func (c *Container) UsePostgres(pool *pgxpool.Pool) {
	c.PGPool = pool
	c.Users = pginfra.NewUserRepository(pool)
	c.Tasks = pginfra.NewTaskRepository(pool)
	c.Timetable = pginfra.NewTimetableRepository(pool)
}

// UseMemory backs the repositories with a process-local store.
func (c *Container) UseMemory(s *memory.Store) {
	c.Users = s.Users()
	c.Tasks = s.Tasks()
	c.Timetable = s.Timetable()
}

// TaskIndexer returns nil unless Elasticsearch is configured.
func (c *Container) TaskIndexer() application.TaskIndexer {
	if c.ES == nil || c.Config.ESTasksIndex == "" {
		return nil
	}
	return search.NewTaskIndex(c.ES, c.Config.ESTasksIndex, c.Logger)
}

// Uploader returns nil unless a GCS bucket is configured.
func (c *Container) Uploader() application.ObjectUploader {
	if c.GCS == nil || c.Config.GCSBucket == "" {
		return nil
	}
	return helpers.NewGCSUploader(c.GCS, c.Config.GCSBucket)
}
