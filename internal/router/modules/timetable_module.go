package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/student-planner-api/internal/interface/http"
	"github.com/oksasatya/student-planner-api/pkg/helpers"
)

type TimetableModule struct {
	Handler *handlers.TimetableHandler
	JWT     *helpers.JWTManager
	RDB     *redis.Client
}

func NewTimetableModule(h *handlers.TimetableHandler, jwt *helpers.JWTManager, rdb *redis.Client) *TimetableModule {
	return &TimetableModule{Handler: h, JWT: jwt, RDB: rdb}
}

func (m *TimetableModule) Register(rg *gin.RouterGroup) {
	g := protected(rg, "/timetable", m.RDB, m.JWT)
	{
		g.GET("", m.Handler.List)
		g.GET("/subjects", m.Handler.Subjects)
		g.POST("", m.Handler.Create)
		g.GET("/:id", m.Handler.Get)
		g.PUT("/:id", m.Handler.Update)
		g.PATCH("/:id", m.Handler.Update)
		g.DELETE("/:id", m.Handler.Delete)
	}
}
