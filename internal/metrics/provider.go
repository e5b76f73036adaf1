package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cristianadrielbraun/qrstudio/internal/config"
)

type Provider interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	ObserveRenderDuration(duration time.Duration)
	IncExports(format string, ok bool)
	IncSuggestions(outcome string)
	IncCacheHits()
	IncCacheMisses()
	// Handler serves the scrape endpoint, nil when metrics are disabled.
	Handler() http.Handler
}

type PromProvider struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	renderDuration  prometheus.Histogram
	exportsTotal    *prometheus.CounterVec
	suggestions     *prometheus.CounterVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
}

func (m *PromProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *PromProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *PromProvider) ObserveRenderDuration(duration time.Duration) {
	m.renderDuration.Observe(duration.Seconds())
}

func (m *PromProvider) IncExports(format string, ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	m.exportsTotal.WithLabelValues(format, result).Inc()
}

func (m *PromProvider) IncSuggestions(outcome string) {
	m.suggestions.WithLabelValues(outcome).Inc()
}

func (m *PromProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *PromProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *PromProvider) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

// NewProvider registers the collectors on a private registry so several
// providers can coexist in one process.
func NewProvider(conf *config.Config) Provider {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector(), prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &PromProvider{
		registry: reg,

		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "qrstudio_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "qrstudio_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "qrstudio_render_duration_seconds",
			Help:    "Duration of preview redraws in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		exportsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "qrstudio_exports_total",
			Help: "Exported files by format and result",
		}, []string{"format", "result"}),

		suggestions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "qrstudio_suggestions_total",
			Help: "Style suggestion requests by outcome",
		}, []string{"outcome"}),

		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "qrstudio_cache_hits_total",
			Help: "Total number of render cache hits",
		}),

		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "qrstudio_cache_misses_total",
			Help: "Total number of render cache misses",
		}),
	}
}

// noopMetrics is used when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) ObserveRenderDuration(_ time.Duration)            {}
func (n *noopMetrics) IncExports(_ string, _ bool)                      {}
func (n *noopMetrics) IncSuggestions(_ string)                          {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) Handler() http.Handler                            { return nil }
