package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/student-planner-api/internal/interface/http"
	"github.com/oksasatya/student-planner-api/pkg/helpers"
)

type TaskModule struct {
	Handler *handlers.TaskHandler
	JWT     *helpers.JWTManager
	RDB     *redis.Client
}

func NewTaskModule(h *handlers.TaskHandler, jwt *helpers.JWTManager, rdb *redis.Client) *TaskModule {
	return &TaskModule{Handler: h, JWT: jwt, RDB: rdb}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	g := protected(rg, "/tasks", m.RDB, m.JWT)
	{
		g.GET("", m.Handler.List)
		g.GET("/overdue", m.Handler.Overdue)
		g.GET("/search", m.Handler.Search)
		g.POST("", m.Handler.Create)
		g.GET("/:id", m.Handler.Get)
		g.PUT("/:id", m.Handler.Update)
		g.PATCH("/:id", m.Handler.Update)
		g.DELETE("/:id", m.Handler.Delete)
	}
}
