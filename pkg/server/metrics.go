package server

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/glint-ui/glint/pkg/reactive"
)

const metricsNamespace = "glint"

// serverMetrics holds the Prometheus metrics for the server.
type serverMetrics struct {
	activeSessions prometheus.Gauge
	sessionsTotal  prometheus.Counter
	eventsTotal    *prometheus.CounterVec
	eventDuration  *prometheus.HistogramVec
	patchesTotal   prometheus.Counter

	signalWrites prometheus.Counter
	effectRuns   prometheus.Counter
	effectPanics prometheus.Counter
}

// Metrics registration is process-global, matching the default
// Prometheus registry.
var (
	globalMetrics     *serverMetrics
	globalMetricsOnce sync.Once
)

func newServerMetrics() *serverMetrics {
	globalMetricsOnce.Do(func() {
		globalMetrics = initMetrics(prometheus.DefaultRegisterer)
		globalMetrics.hookReactive()
	})
	return globalMetrics
}

func initMetrics(registry prometheus.Registerer) *serverMetrics {
	factory := promauto.With(registry)

	return &serverMetrics{
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "active_sessions",
			Help:      "Number of active WebSocket sessions",
		}),
		sessionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "sessions_total",
			Help:      "Total number of sessions opened",
		}),
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "events_total",
			Help:      "Total number of browser events processed",
		}, []string{"event"}),
		eventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "event_duration_seconds",
			Help:      "Event dispatch duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"event"}),
		patchesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "patches_sent_total",
			Help:      "Total number of patch operations sent to clients",
		}),
		signalWrites: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "signal_writes_total",
			Help:      "Total number of signal writes",
		}),
		effectRuns: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "effect_runs_total",
			Help:      "Total number of effect executions",
		}),
		effectPanics: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "effect_panics_total",
			Help:      "Total number of contained effect panics",
		}),
	}
}

// hookReactive wires the reactive core's instrumentation hooks to the
// process counters, preserving whatever tuning the host already applied.
func (m *serverMetrics) hookReactive() {
	cfg := reactive.CurrentConfig()
	cfg.Hooks = reactive.Hooks{
		OnSignalWrite: func() { m.signalWrites.Inc() },
		OnEffectRun:   func() { m.effectRuns.Inc() },
		OnEffectPanic: func(any) { m.effectPanics.Inc() },
	}
	reactive.Configure(cfg)
}

func (m *serverMetrics) sessionOpened() {
	m.activeSessions.Inc()
	m.sessionsTotal.Inc()
}

func (m *serverMetrics) sessionClosed() {
	m.activeSessions.Dec()
}

func (m *serverMetrics) eventReceived(event string) {
	m.eventsTotal.WithLabelValues(event).Inc()
}

func (m *serverMetrics) eventHandled(event string, d time.Duration) {
	m.eventDuration.WithLabelValues(event).Observe(d.Seconds())
}

func (m *serverMetrics) patchesSent(n int) {
	m.patchesTotal.Add(float64(n))
}
