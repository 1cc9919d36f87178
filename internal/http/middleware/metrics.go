package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okaycreative/studioops/internal/observability"
)

// Metrics instruments HTTP request counts/latency when metrics are enabled.
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		method := c.Request.Method
		m.IncAPIRequest(method, route, c.Writer.Status())
		m.ObserveAPILatency(method, route, time.Since(start))
	}
}
