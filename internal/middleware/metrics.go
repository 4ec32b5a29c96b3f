package middleware

import (
	"strconv"
	"time"

	"github.com/stpnv0/HotelBooker/internal/metrics"
	"github.com/wb-go/wbf/ginext"
)

// Metrics records request count and latency per route template.
func Metrics() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
