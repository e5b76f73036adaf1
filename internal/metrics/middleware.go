package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware records request counts and durations per route template, so
// path parameters do not explode label cardinality.
func Middleware(m Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		m.IncRequestsTotal(endpoint, c.Writer.Status())
		m.ObserveRequestDuration(endpoint, time.Since(start))
	}
}
