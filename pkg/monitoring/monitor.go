package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	SessionsStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "planner_sessions_started_total",
			Help: "Total number of study sessions started",
		},
	)

	ScheduleBuilds = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_schedule_builds_total",
			Help: "Total number of schedule builds by view",
		},
		[]string{"view"},
	)

	// EmptyReferenceWarnings counts message generations that had to fall
	// back to a generic text because a subject had no recorded strengths
	// or weaknesses. Non-fatal, but worth watching: it means the snapshot
	// data is thinner than the messaging expects.
	EmptyReferenceWarnings = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "planner_empty_reference_warnings_total",
			Help: "Fallback messages emitted due to missing strength/weakness data",
		},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(SessionsStarted)
	prometheus.MustRegister(ScheduleBuilds)
	prometheus.MustRegister(EmptyReferenceWarnings)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
