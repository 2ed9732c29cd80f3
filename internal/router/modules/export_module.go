package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/student-planner-api/internal/interface/http"
	"github.com/oksasatya/student-planner-api/internal/interface/middleware"
	"github.com/oksasatya/student-planner-api/pkg/helpers"
)

type ExportModule struct {
	Handler *handlers.ExportHandler
	JWT     *helpers.JWTManager
	RDB     *redis.Client
}

func NewExportModule(h *handlers.ExportHandler, jwt *helpers.JWTManager, rdb *redis.Client) *ExportModule {
	return &ExportModule{Handler: h, JWT: jwt, RDB: rdb}
}

func (m *ExportModule) Register(rg *gin.RouterGroup) {
	g := protected(rg, "/export", m.RDB, m.JWT)
	// exports write to object storage, keep them rare
	g.POST("", middleware.RateLimit(m.RDB, 5, time.Hour, middleware.KeyByUserID(), nil), m.Handler.Export)
}
