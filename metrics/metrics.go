package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "teamchat_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "teamchat_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "route"},
	)

	// Domain metrics
	Operations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "teamchat_operations_total",
			Help: "Domain operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	JoinCodeRotations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "teamchat_join_code_rotations_total",
			Help: "Total join codes rotated",
		},
	)

	RateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "teamchat_rate_limit_hits_total",
			Help: "Total rate limit hits",
		},
		[]string{"route"},
	)
)

// Outcomer is implemented by errors that name their own outcome label.
type Outcomer interface {
	Outcome() string
}

// ObserveOperation counts one call of a domain operation. The outcome label
// is "ok", the error's own outcome label, or "error".
func ObserveOperation(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
		var o Outcomer
		if errors.As(err, &o) {
			outcome = o.Outcome()
		}
	}
	Operations.WithLabelValues(operation, outcome).Inc()
}
