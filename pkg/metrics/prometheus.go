// Package metrics provides Prometheus metrics for tuiermo game sessions.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the game.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	attemptBuckets   []float64
	enabled          bool
	registry         prometheus.Registerer

	// Session metrics
	sessionsStarted prometheus.Counter
	sessionsSolved  prometheus.Counter
	attemptsToSolve prometheus.Histogram
	historyLength   prometheus.Gauge
	events          *prometheus.CounterVec

	// Guess metrics
	guessesAccepted prometheus.Counter
	guessesRejected prometheus.Counter
	guessesRepeated prometheus.Counter

	// HTTP exposition metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "tuiermo",
		subsystem:        "session",
		histogramBuckets: prometheus.DefBuckets,
		attemptBuckets:   prometheus.LinearBuckets(1, 1, 10),
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.sessionsStarted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_started_total",
		Help:      "Total number of game sessions started",
	})

	m.sessionsSolved = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_solved_total",
		Help:      "Total number of sessions where the target was guessed",
	})

	m.attemptsToSolve = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "attempts_to_solve",
		Help:      "Accepted guesses needed to find the target",
		Buckets:   m.attemptBuckets,
	})

	m.historyLength = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "history_length",
		Help:      "Number of accepted guesses in the current session",
	})

	m.events = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "events_total",
			Help:      "Input events handled by the session, by event and outcome",
		},
		[]string{"event", "outcome"},
	)

	m.guessesAccepted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "guesses_accepted_total",
		Help:      "Total number of guesses scored and appended to the history",
	})

	m.guessesRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "guesses_rejected_total",
		Help:      "Total number of submissions dropped for length or non-letters",
	})

	m.guessesRepeated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "guesses_repeated_total",
		Help:      "Total number of accepted guesses already played in the session",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// RecordSessionStarted counts a new session.
func (m *Manager) RecordSessionStarted() {
	if m.enabled {
		m.sessionsStarted.Inc()
		m.historyLength.Set(0)
	}
}

// RecordSolved counts a session solved after attempts accepted guesses.
func (m *Manager) RecordSolved(attempts int) {
	if m.enabled {
		m.sessionsSolved.Inc()
		m.attemptsToSolve.Observe(float64(attempts))
	}
}

// RecordEvent counts a handled input event.
func (m *Manager) RecordEvent(event, outcome string) {
	if m.enabled {
		m.events.WithLabelValues(event, outcome).Inc()
	}
}

// RecordGuessAccepted counts an accepted guess and updates the history gauge.
func (m *Manager) RecordGuessAccepted(historyLen int) {
	if m.enabled {
		m.guessesAccepted.Inc()
		m.historyLength.Set(float64(historyLen))
	}
}

// RecordGuessRejected counts a dropped submission.
func (m *Manager) RecordGuessRejected() {
	if m.enabled {
		m.guessesRejected.Inc()
	}
}

// RecordGuessRepeated counts an accepted guess that was played before.
func (m *Manager) RecordGuessRepeated() {
	if m.enabled {
		m.guessesRepeated.Inc()
	}
}

// RecordHTTPRequest counts an HTTP request.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string) {
	if m.enabled {
		m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration observes an HTTP request duration.
func (m *Manager) RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	if m.enabled {
		m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
	}
}

// Global helpers delegate to the process-wide manager.

func RecordSessionStarted()              { globalManager.RecordSessionStarted() }
func RecordSolved(attempts int)          { globalManager.RecordSolved(attempts) }
func RecordEvent(event, outcome string)  { globalManager.RecordEvent(event, outcome) }
func RecordGuessAccepted(historyLen int) { globalManager.RecordGuessAccepted(historyLen) }
func RecordGuessRejected()               { globalManager.RecordGuessRejected() }
func RecordGuessRepeated()               { globalManager.RecordGuessRepeated() }

func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode)
}

func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.RecordHTTPRequestDuration(endpoint, method, statusCode, duration)
}

// GetRegistry returns the registry the global manager writes to.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
