package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/student-planner-api/internal/interface/middleware"
	"github.com/oksasatya/student-planner-api/pkg/helpers"
)

// protected returns a group behind the Identity Verifier with the shared per-IP and per-user limits.
func protected(rg *gin.RouterGroup, path string, rdb *redis.Client, jwt *helpers.JWTManager) *gin.RouterGroup {
	g := rg.Group(path)
	g.Use(middleware.Auth(rdb, jwt))
	g.Use(
		middleware.RateLimit(rdb, 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	return g
}
