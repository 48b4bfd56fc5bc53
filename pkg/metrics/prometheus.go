// Package metrics provides Prometheus metrics for the CarPilot service.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	defaultNamespace = "carpilot"
)

// defaultLatencyBuckets cover sub-millisecond scoring up to slow requests.
var defaultLatencyBuckets = []float64{0.1, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000}

// Manager owns all Prometheus collectors for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Recommendation pipeline
	recommendRequests prometheus.Counter
	recommendLatency  prometheus.Histogram
	emptyResults      prometheus.Counter
	intentsDetected   *prometheus.CounterVec
	resultsReturned   prometheus.Histogram

	// Dataset
	datasetRows         prometheus.Gauge
	datasetReloads      prometheus.Counter
	datasetLoadDuration prometheus.Histogram

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Errors by component and kind
	errorsTotal *prometheus.CounterVec
}

// NewManager creates a Manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        defaultNamespace,
		histogramBuckets: defaultLatencyBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)

	m.recommendRequests = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "recommend_requests_total",
		Help: "Total recommendation requests served.",
	})
	m.recommendLatency = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "recommend_latency_ms",
		Help:    "End-to-end recommend pipeline latency in milliseconds.",
		Buckets: m.histogramBuckets,
	})
	m.emptyResults = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "recommend_empty_results_total",
		Help: "Requests whose constraints filtered out every car.",
	})
	m.intentsDetected = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "intents_detected_total",
		Help: "Detected intents by label.",
	}, []string{"intent"})
	m.resultsReturned = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "recommend_results_returned",
		Help:    "Number of results returned per request.",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
	})

	m.datasetRows = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "dataset_rows",
		Help: "Rows in the current dataset snapshot.",
	})
	m.datasetReloads = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "dataset_reloads_total",
		Help: "Successful dataset reloads since start.",
	})
	m.datasetLoadDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "dataset_load_duration_ms",
		Help:    "Dataset load/parse duration in milliseconds.",
		Buckets: m.histogramBuckets,
	})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "http_requests_total",
		Help: "HTTP requests by endpoint, method and status.",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds.",
		Buckets: m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	m.errorsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "errors_total",
		Help: "Errors by component and kind.",
	}, []string{"component", "kind"})

	return m
}

var (
	defaultManager *Manager
	defaultOnce    sync.Once
)

// Default returns the process-wide Manager, creating it on first use.
func Default() *Manager {
	defaultOnce.Do(func() {
		defaultManager = NewManager()
	})
	return defaultManager
}

// Package-level recording helpers against the default manager.

// RecordRecommendServed records one completed recommend call.
func RecordRecommendServed(durationMs float64, results int) {
	m := Default()
	m.recommendRequests.Inc()
	m.recommendLatency.Observe(durationMs)
	m.resultsReturned.Observe(float64(results))
	if results == 0 {
		m.emptyResults.Inc()
	}
}

// RecordIntentDetected bumps the counter for one detected intent label.
func RecordIntentDetected(intent string) {
	Default().intentsDetected.WithLabelValues(intent).Inc()
}

// UpdateDatasetRows sets the dataset row gauge.
func UpdateDatasetRows(n int) {
	Default().datasetRows.Set(float64(n))
}

// RecordDatasetReload records a successful dataset load.
func RecordDatasetReload(durationMs float64) {
	m := Default()
	m.datasetReloads.Inc()
	m.datasetLoadDuration.Observe(durationMs)
}

// RecordHTTPRequest records one HTTP request outcome.
func RecordHTTPRequest(endpoint, method, status string) {
	Default().httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records one HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	Default().httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
}

// RecordError bumps the error counter for a component/kind pair.
func RecordError(component, kind string) {
	Default().errorsTotal.WithLabelValues(component, kind).Inc()
}
