package router

import (
	"github.com/oksasatya/student-planner-api/internal/application"
	"github.com/oksasatya/student-planner-api/internal/container"
	handlers "github.com/oksasatya/student-planner-api/internal/interface/http"
	"github.com/oksasatya/student-planner-api/internal/router/modules"
)

// Services are the cores built from the container; cmd/ binaries reuse them.
type Services struct {
	Users     *application.UserService
	Tasks     *application.TaskService
	Timetable *application.TimetableService
	Export    *application.ExportService
}

func BuildServices(c *container.Container) Services {
	tasks := application.NewTaskService(c.Tasks, c.TaskIndexer(), c.Logger)
	timetable := application.NewTimetableService(c.Timetable, c.Logger)
	return Services{
		Users:     application.NewUserService(c.Users, c.JWT, c.Redis, c.Logger),
		Tasks:     tasks,
		Timetable: timetable,
		Export:    application.NewExportService(tasks, timetable, c.Uploader(), c.Logger),
	}
}

// InitModules wires every feature module and registers it with the router registry.
// It should be called once during application startup.
func InitModules(r *Registry, c *container.Container) Services {
	svc := BuildServices(c)
	cfg := c.Config

	r.Engine.GET("/", handlers.Banner(cfg.AppName, cfg.AppVersion))

	r.Add(
		modules.NewAuthModule(handlers.NewUserHandler(svc.Users, c.Logger, cfg.CookieDomain, cfg.CookieSecure), c.JWT, c.Redis),
		modules.NewTaskModule(handlers.NewTaskHandler(svc.Tasks, c.Logger), c.JWT, c.Redis),
		modules.NewTimetableModule(handlers.NewTimetableHandler(svc.Timetable, c.Logger), c.JWT, c.Redis),
		modules.NewExportModule(handlers.NewExportHandler(svc.Export, c.Logger), c.JWT, c.Redis),
	)
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(c.Redis))
	}
	return svc
}
