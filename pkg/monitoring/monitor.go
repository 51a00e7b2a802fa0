package monitoring

import (
	"strconv"
	"sync"
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
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"method", "endpoint"},
	)

	AnalysisCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "learning_analyses_total",
			Help: "Completed performance analyses by predicted level",
		},
		[]string{"level"},
	)

	GapCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "learning_gaps_total",
			Help: "Learning gaps detected by type and severity",
		},
		[]string{"type", "severity"},
	)

	UnknownSubjectCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "learning_unknown_subjects_total",
			Help: "Analyses whose subject was outside the fitted vocabulary",
		},
	)

	ChatIntentCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_replies_total",
			Help: "Chatbot replies by matched intent",
		},
		[]string{"intent"},
	)

	ChatGuardCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chatbot_guarded_replies_total",
			Help: "Chatbot replies replaced by the fallback after the denylist check",
		},
	)

	PersistenceFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "learning_persistence_failures_total",
			Help: "Best-effort writes that failed, by store",
		},
		[]string{"store"},
	)
)

var initOnce sync.Once

// Init registers the collectors. Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDuration,
			AnalysisCounter,
			GapCounter,
			UnknownSubjectCounter,
			ChatIntentCounter,
			ChatGuardCounter,
			PersistenceFailures,
		)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(time.Since(start).Seconds())
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
