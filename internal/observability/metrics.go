package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for BeanLedger.
type Metrics struct {
	// --- Booking ---
	DirectivesBooked *prometheus.CounterVec
	DirectivesFailed *prometheus.CounterVec
	BookingDuration  *prometheus.HistogramVec
	StreamSequence   prometheus.Gauge
	RunsStarted      prometheus.Counter
	RunsCompleted    *prometheus.CounterVec

	// --- Ingestion ---
	DirectivesReceived *prometheus.CounterVec
	ParseErrors        *prometheus.CounterVec
	IngestQueueLatency *prometheus.HistogramVec

	// --- Persistence ---
	PersistDirectivesWritten prometheus.Counter
	PersistPricesWritten     prometheus.Counter
	PersistBatchSize         prometheus.Histogram
	PersistBatchDur          prometheus.Histogram
	PersistErrors            *prometheus.CounterVec
	PersistLastSequence      prometheus.Gauge

	// --- Query API ---
	QueryRequests *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
	QueryErrors   *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	bookingBuckets := []float64{
		0.000001, 0.000005, 0.00001, 0.000025, 0.00005,
		0.0001, 0.00025, 0.0005, 0.001, 0.002, 0.005, 0.01,
	}

	return &Metrics{
		// Booking
		DirectivesBooked: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bean_directives_booked_total",
			Help: "Directives booked and emitted on the output stream",
		}, []string{"kind"}),

		DirectivesFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bean_directives_failed_total",
			Help: "Directives rejected by the booking engine",
		}, []string{"kind", "reason"}),

		BookingDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bean_booking_duration_seconds",
			Help:    "Time to book a single directive",
			Buckets: bookingBuckets,
		}, []string{"kind"}),

		StreamSequence: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "bean_stream_sequence",
			Help: "Sequence of the last emitted directive in the current run",
		}),

		RunsStarted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bean_runs_started_total",
			Help: "Booking runs started",
		}),

		RunsCompleted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bean_runs_completed_total",
			Help: "Booking runs completed (clean/with_errors/aborted)",
		}, []string{"outcome"}),

		// Ingestion
		DirectivesReceived: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bean_directives_received_total",
			Help: "Raw directives received from the input stream",
		}, []string{"subject"}),

		ParseErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bean_parse_errors_total",
			Help: "Directives dropped because the payload failed to parse",
		}, []string{"subject"}),

		IngestQueueLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bean_ingest_queue_latency_seconds",
			Help:    "Time between NATS receipt and parse dequeue",
			Buckets: bookingBuckets,
		}, []string{"subject"}),

		// Persistence
		PersistDirectivesWritten: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bean_persist_directives_written_total",
			Help: "Booked directives written to Postgres",
		}),

		PersistPricesWritten: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bean_persist_prices_written_total",
			Help: "Price observations written to Postgres",
		}),

		PersistBatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bean_persist_batch_size",
			Help:    "Directives per batch",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),

		PersistBatchDur: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bean_persist_batch_duration_seconds",
			Help:    "Postgres batch write duration",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),

		PersistErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bean_persist_errors_total",
			Help: "Persistence errors",
		}, []string{"error_type"}),

		PersistLastSequence: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "bean_persist_last_sequence",
			Help: "Last persisted sequence",
		}),

		// Query API
		QueryRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bean_query_requests_total",
			Help: "Query requests",
		}, []string{"endpoint", "status"}),

		QueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bean_query_duration_seconds",
			Help:    "Query latency",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"endpoint"}),

		QueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bean_query_errors_total",
			Help: "Query errors",
		}, []string{"endpoint", "code"}),
	}
}
