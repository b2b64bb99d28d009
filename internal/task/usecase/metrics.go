package usecase

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds Prometheus metrics for pipeline runs.
type Metrics struct {
	RunsTotal      *prometheus.CounterVec
	RunDuration    prometheus.Histogram
	TasksPersisted prometheus.Counter
	EventsCreated  prometheus.Counter
	TaskFailures   *prometheus.CounterVec
}

// NewMetrics registers pipeline metrics once per process.
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			RunsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "pipeline_runs_total",
					Help: "Pipeline runs by terminal stage",
				},
				[]string{"stage"},
			),
			RunDuration: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "pipeline_run_duration_seconds",
					Help:    "Duration of a pipeline run",
					Buckets: prometheus.DefBuckets,
				},
			),
			TasksPersisted: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "pipeline_tasks_persisted_total",
					Help: "Tasks stored by the pipeline",
				},
			),
			EventsCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "pipeline_events_created_total",
					Help: "Events stored and linked to a task",
				},
			),
			TaskFailures: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "pipeline_task_failures_total",
					Help: "Per-task failures by stage",
				},
				[]string{"stage"},
			),
		}
	})
	return globalMetrics
}
