// Package metrics exposes collector and facade instruments in the
// Prometheus exposition format.
//
// A nil *Recorder is valid and records nothing, so components can take one
// unconditionally.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hoops"

// Recorder owns a private registry and the instruments registered on it.
type Recorder struct {
	reg *prometheus.Registry

	sourceCalls     *prometheus.CounterVec
	sourceLatency   *prometheus.HistogramVec
	sourceUp        prometheus.Gauge
	upserts         *prometheus.CounterVec
	passes          *prometheus.CounterVec
	passDuration    *prometheus.HistogramVec
	collectorActive prometheus.Gauge
	httpRequests    *prometheus.CounterVec
	httpLatency     *prometheus.HistogramVec
}

// New creates a Recorder with Go runtime and process collectors attached.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		reg: reg,
		sourceCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "source_calls_total",
			Help: "Basketball API operations by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		sourceLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "source_call_duration_seconds",
			Help:    "Basketball API round-trip latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		sourceUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "source_up",
			Help: "1 when the last reachability probe succeeded.",
		}),
		upserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "upserts_total",
			Help: "Find-or-create calls by entity and result (created, existing, failed).",
		}, []string{"entity", "result"}),
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "collection_passes_total",
			Help: "Collection passes by kind and outcome.",
		}, []string{"kind", "outcome"}),
		passDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "collection_pass_duration_seconds",
			Help:    "Collection pass duration.",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300},
		}, []string{"kind"}),
		collectorActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "collector_running",
			Help: "1 while the collection loop runs.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_requests_total",
			Help: "HTTP requests by route pattern and status.",
		}, []string{"route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.sourceCalls, r.sourceLatency, r.sourceUp,
		r.upserts, r.passes, r.passDuration, r.collectorActive,
		r.httpRequests, r.httpLatency,
	)
	return r
}

// Handler serves the registry.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// ObserveSourceCall matches the apisports.Observer signature.
func (r *Recorder) ObserveSourceCall(endpoint, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.sourceCalls.WithLabelValues(endpoint, outcome).Inc()
	if elapsed > 0 {
		r.sourceLatency.WithLabelValues(endpoint).Observe(elapsed.Seconds())
	}
}

func (r *Recorder) SetSourceUp(up bool) {
	if r == nil {
		return
	}
	r.sourceUp.Set(boolGauge(up))
}

// RecordUpsert counts one find-or-create outcome.
func (r *Recorder) RecordUpsert(entity string, created bool, err error) {
	if r == nil {
		return
	}
	result := "existing"
	switch {
	case err != nil:
		result = "failed"
	case created:
		result = "created"
	}
	r.upserts.WithLabelValues(entity, result).Inc()
}

// ObservePass records a finished historical or live pass.
func (r *Recorder) ObservePass(kind string, failed bool, elapsed time.Duration) {
	if r == nil {
		return
	}
	outcome := "ok"
	if failed {
		outcome = "error"
	}
	r.passes.WithLabelValues(kind, outcome).Inc()
	r.passDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

func (r *Recorder) SetCollectorRunning(running bool) {
	if r == nil {
		return
	}
	r.collectorActive.Set(boolGauge(running))
}

// ObserveRequest records one HTTP request against its route pattern.
func (r *Recorder) ObserveRequest(route string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	r.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	r.httpLatency.WithLabelValues(route).Observe(elapsed.Seconds())
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
