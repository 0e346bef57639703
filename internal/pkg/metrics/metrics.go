package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	RecommenderHealthProbes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_health_probes_total",
			Help: "Health probes sent to the recommendation service",
		},
		[]string{"result"}, // "healthy", "unhealthy"
	)

	RecommenderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_requests_total",
			Help: "Recommendation calls by outcome",
		},
		[]string{"outcome"}, // "ok", "bad_request", "upstream", "unavailable"
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)

// RecordHTTPRequest records one served request
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordHealthProbe records the result of a recommender health probe
func RecordHealthProbe(healthy bool) {
	result := "unhealthy"
	if healthy {
		result = "healthy"
	}
	RecommenderHealthProbes.WithLabelValues(result).Inc()
}

func RecordRecommendation(outcome string) {
	RecommenderRequests.WithLabelValues(outcome).Inc()
}

func SetBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
