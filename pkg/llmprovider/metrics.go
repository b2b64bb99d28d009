package llmprovider

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

var (
	metricsOnce    sync.Once
	defaultMetrics *Metrics
)

// Metrics counts provider attempts and fallbacks.
type Metrics struct {
	Requests  *prometheus.CounterVec
	Duration  *prometheus.HistogramVec
	Fallbacks prometheus.Counter
}

// NewMetrics returns the process-wide provider metrics, registering them on first use.
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		defaultMetrics = &Metrics{
			Requests: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "llm",
				Name:      "provider_requests_total",
				Help:      "Provider calls by provider and outcome, counting each retry.",
			}, []string{"provider", "outcome"}),
			Duration: promauto.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: "llm",
				Name:      "provider_request_duration_seconds",
				Help:      "Latency of a single provider call.",
				Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40},
			}, []string{"provider"}),
			Fallbacks: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "llm",
				Name:      "fallbacks_total",
				Help:      "Times a request moved on to the next provider.",
			}),
		}
	})
	return defaultMetrics
}
