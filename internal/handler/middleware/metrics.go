package middleware

import (
	"strconv"
	"time"

	"parkspot/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

const unmatchedRoute = "unmatched"

// MetricsMiddleware records request count and latency per route template.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metrics.ObserveHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
