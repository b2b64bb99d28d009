package extraction

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK                = "ok"
	outcomeEmpty             = "empty"
	outcomeModelError        = "model_error"
	outcomeParseFailure      = "parse_failure"
	outcomeValidationFailure = "validation_failure"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds Prometheus metrics for task extraction.
type Metrics struct {
	RunsTotal    *prometheus.CounterVec
	TasksTotal   prometheus.Counter
	ModelLatency prometheus.Histogram
}

// NewMetrics registers extraction metrics once per process.
//
// Metrics:
//   - extraction_runs_total{outcome}
//   - extraction_tasks_total
//   - extraction_model_latency_seconds
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			RunsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "extraction_runs_total",
					Help: "Total number of extraction calls by outcome",
				},
				[]string{"outcome"},
			),
			TasksTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "extraction_tasks_total",
					Help: "Total number of task drafts extracted",
				},
			),
			ModelLatency: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "extraction_model_latency_seconds",
					Help:    "Latency of the completion call",
					Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
				},
			),
		}
	})
	return globalMetrics
}
