package middleware

import (
	"expvar"
	"strconv"

	"github.com/gin-gonic/gin"
)

// requestCounts is published on /api/debug/vars as http_requests{"2xx":..,"4xx":..}.
var requestCounts = expvar.NewMap("http_requests")

// Metrics counts finished requests by status class.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		requestCounts.Add(strconv.Itoa(c.Writer.Status()/100)+"xx", 1)
	}
}
