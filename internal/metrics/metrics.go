package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notesync_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "notesync_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)

	NoteRatings = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "notesync_note_rating",
			Help:    "Distribution of submitted note ratings",
			Buckets: prometheus.LinearBuckets(1, 1, 5),
		},
	)
)

// Instrument records request count and duration per route. It uses the
// route template (not the raw path) so IDs do not blow up label cardinality.
func Instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		RequestsTotal.WithLabelValues(path, c.Request.Method, status).Inc()
		RequestDuration.WithLabelValues(path, c.Request.Method, status).
			Observe(time.Since(start).Seconds())
	}
}
