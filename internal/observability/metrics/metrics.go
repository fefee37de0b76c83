package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPMetrics exposes request-level instruments.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewHTTPMetrics() *HTTPMetrics {
	return &HTTPMetrics{
		requests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "roisim_http_requests_total",
			Help: "Count of HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		duration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roisim_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

// GinMiddleware records request counts and latency.
func GinMiddleware(m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if m == nil {
			return
		}
		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}
		m.requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// Metrics exposes application-level instruments.
type Metrics struct {
	simulationsRun   prometheus.Counter
	scenariosCreated prometheus.Counter
	scenariosDeleted prometheus.Counter
	reportsGenerated prometheus.Counter
	leadsCaptured    prometheus.Counter
}

// New configures the domain metrics instruments.
func New() *Metrics {
	return &Metrics{
		simulationsRun: promauto.NewCounter(prometheus.CounterOpts{
			Name: "roisim_simulations_total",
			Help: "Count of ROI simulations evaluated.",
		}),
		scenariosCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "roisim_scenarios_created_total",
			Help: "Count of scenarios persisted.",
		}),
		scenariosDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "roisim_scenarios_deleted_total",
			Help: "Count of scenarios deleted.",
		}),
		reportsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "roisim_reports_generated_total",
			Help: "Count of reports rendered.",
		}),
		leadsCaptured: promauto.NewCounter(prometheus.CounterOpts{
			Name: "roisim_leads_captured_total",
			Help: "Count of leads recorded.",
		}),
	}
}

// RecordSimulation increments simulation counts.
func (m *Metrics) RecordSimulation() {
	if m == nil {
		return
	}
	m.simulationsRun.Inc()
}

// RecordScenarioCreated increments scenario create counts.
func (m *Metrics) RecordScenarioCreated() {
	if m == nil {
		return
	}
	m.scenariosCreated.Inc()
}

// RecordScenarioDeleted increments scenario delete counts.
func (m *Metrics) RecordScenarioDeleted() {
	if m == nil {
		return
	}
	m.scenariosDeleted.Inc()
}

// RecordReportGenerated increments report render counts.
func (m *Metrics) RecordReportGenerated() {
	if m == nil {
		return
	}
	m.reportsGenerated.Inc()
}

// RecordLeadCaptured increments lead capture counts.
func (m *Metrics) RecordLeadCaptured() {
	if m == nil {
		return
	}
	m.leadsCaptured.Inc()
}
