package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rental"

// Quote outcomes.
const (
	OutcomeQuoted      = "quoted"
	OutcomeUnavailable = "unavailable"
	OutcomeRejected    = "rejected"
	OutcomeFailed      = "failed"
)

// Rate cache results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

type Metrics struct {
	quotes        *prometheus.CounterVec
	quoteDuration prometheus.Histogram
	rateCache     *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	gatherer      prometheus.Gatherer
}

// NewMetrics registers the service collectors. Pass prometheus.NewRegistry() in tests.
func NewMetrics(reg *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{
		quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_total",
			Help:      "Booking cost quotes by outcome.",
		}, []string{"outcome"}),
		quoteDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_duration_seconds",
			Help:      "Time spent computing a booking cost quote.",
			Buckets:   prometheus.DefBuckets,
		}),
		rateCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_cache_requests_total",
			Help:      "Optimizer cache lookups by result.",
		}, []string{"result"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route template and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		gatherer: reg,
	}

	for _, c := range []prometheus.Collector{m.quotes, m.quoteDuration, m.rateCache, m.httpDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) ObserveQuote(outcome string, elapsed time.Duration) {
	m.quotes.WithLabelValues(outcome).Inc()
	m.quoteDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) RateCache(result string) {
	m.rateCache.WithLabelValues(result).Inc()
}

// ObserveHTTP records one request. route must be the template (e.g. /api/cars/:id/availability)
// so label cardinality stays bounded.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
