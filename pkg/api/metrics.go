package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds all Prometheus metrics for the API
type Metrics struct {
	// HTTP request metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight *prometheus.GaugeVec

	// Codec metrics
	messagesParsedTotal  prometheus.Counter
	malformedFieldsTotal prometheus.Counter
	validationsTotal     *prometheus.CounterVec
	messagesBuiltTotal   *prometheus.CounterVec

	// Journal metrics
	journalOperationsTotal *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics() *Metrics {
	m := &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fixhub_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fixhub_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		httpRequestsInFlight: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fixhub_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method", "endpoint"},
		),

		messagesParsedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "fixhub_messages_parsed_total",
				Help: "Total number of messages parsed",
			},
		),

		malformedFieldsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "fixhub_malformed_fields_total",
				Help: "Total number of malformed fields skipped during parsing",
			},
		),

		validationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fixhub_validations_total",
				Help: "Total number of message validations by outcome",
			},
			[]string{"result", "reason"},
		),

		messagesBuiltTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fixhub_messages_built_total",
				Help: "Total number of messages built by message type",
			},
			[]string{"msg_type"},
		),

		journalOperationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fixhub_journal_operations_total",
				Help: "Total number of journal operations",
			},
			[]string{"operation", "status"},
		),
	}

	return m
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	statusCodeStr := strconv.Itoa(statusCode)

	m.httpRequestsTotal.WithLabelValues(method, endpoint, statusCodeStr).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordParse records a parsed message
func (m *Metrics) RecordParse() {
	m.messagesParsedTotal.Inc()
}

// RecordMalformedField records one skipped malformed field
func (m *Metrics) RecordMalformedField() {
	m.malformedFieldsTotal.Inc()
}

// RecordValidation records a validation outcome. Reason is empty for valid
// messages.
func (m *Metrics) RecordValidation(valid bool, reason string) {
	result := "valid"
	if !valid {
		result = "invalid"
	}
	if reason == "" {
		reason = "none"
	}
	m.validationsTotal.WithLabelValues(result, reason).Inc()
}

// RecordBuild records a built message
func (m *Metrics) RecordBuild(msgType string) {
	m.messagesBuiltTotal.WithLabelValues(msgType).Inc()
}

// RecordJournalOperation records a journal operation
func (m *Metrics) RecordJournalOperation(operation string, success bool) {
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.journalOperationsTotal.WithLabelValues(operation, status).Inc()
}

// InstrumentHandler instruments an HTTP handler with metrics
func (m *Metrics) InstrumentHandler(method, endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Record request in flight
		gauge := m.httpRequestsInFlight.WithLabelValues(method, endpoint)
		gauge.Inc()
		defer gauge.Dec()

		// Create response writer wrapper to capture status code
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		// Call the original handler
		handler(rw, r)

		// Record metrics
		duration := time.Since(start)
		m.RecordHTTPRequest(method, endpoint, rw.statusCode, duration)
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
