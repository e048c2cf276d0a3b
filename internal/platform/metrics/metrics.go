package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the consumer.
type Metrics struct {
	DeltasProcessed    prometheus.Counter
	DeletesProcessed   prometheus.Counter
	RetryableErrors    prometheus.Counter
	NonRetryableErrors prometheus.Counter
	MessagesRetried    prometheus.Counter
	MessagesErrored    prometheus.Counter
	APICallDuration    *prometheus.HistogramVec
	CircuitOpen        prometheus.Gauge
}

// New creates all metrics and registers them with reg; nil registers with the
// default registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		DeltasProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "psc_delta_consumer_deltas_processed_total",
			Help: "Total number of upsert deltas processed successfully",
		}),
		DeletesProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "psc_delta_consumer_deletes_processed_total",
			Help: "Total number of delete deltas processed successfully",
		}),
		RetryableErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "psc_delta_consumer_retryable_errors_total",
			Help: "Total number of retryable processing failures",
		}),
		NonRetryableErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "psc_delta_consumer_non_retryable_errors_total",
			Help: "Total number of non-retryable processing failures",
		}),
		MessagesRetried: factory.NewCounter(prometheus.CounterOpts{
			Name: "psc_delta_consumer_messages_retried_total",
			Help: "Total number of messages forwarded to the retry topic",
		}),
		MessagesErrored: factory.NewCounter(prometheus.CounterOpts{
			Name: "psc_delta_consumer_messages_errored_total",
			Help: "Total number of messages forwarded to the error topic",
		}),
		APICallDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "psc_delta_consumer_api_call_duration_seconds",
			Help:    "Duration of calls to the PSC data API",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "status"}),
		CircuitOpen: factory.NewGauge(prometheus.GaugeOpts{
			Name: "psc_delta_consumer_circuit_open",
			Help: "Whether the data API circuit breaker is currently open",
		}),
	}
}
