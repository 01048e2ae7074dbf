package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Web server metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sutja_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sutja_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route", "method"})

	RateLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sutja_rate_limit_hits_total",
		Help: "Total rate limit rejections",
	})
)

// Conversion metrics.
var (
	KeywordLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sutja_keyword_lookups_total",
		Help: "Keyword lookups by outcome (resolved or fallback)",
	}, []string{"outcome"})

	CredentialsComposed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sutja_credentials_composed_total",
		Help: "Credentials composed by level",
	}, []string{"level"})

	DictionaryEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sutja_dictionary_entries",
		Help: "Number of codes in the loaded keyword dictionary",
	})

	StoryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sutja_llm_story_duration_seconds",
		Help:    "LLM story call duration in seconds",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30},
	})
)

// Database pool metrics (gauges updated periodically).
var (
	DBPoolTotalConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sutja_db_pool_total_conns",
		Help: "Total number of connections in the pool",
	})

	DBPoolIdleConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sutja_db_pool_idle_conns",
		Help: "Number of idle connections in the pool",
	})

	DBPoolAcquiredConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sutja_db_pool_acquired_conns",
		Help: "Number of acquired connections in the pool",
	})
)

// RecordLookup counts one lookup as resolved or fallback.
func RecordLookup(fallback bool) {
	if fallback {
		KeywordLookups.WithLabelValues("fallback").Inc()
		return
	}
	KeywordLookups.WithLabelValues("resolved").Inc()
}
