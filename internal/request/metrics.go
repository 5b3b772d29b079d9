package request

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "praxis_client",
			Name:      "requests_total",
			Help:      "Executor attempts by logical endpoint and outcome.",
		},
		[]string{"endpoint", "outcome"},
	)

	retriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "praxis_client",
			Name:      "retries_total",
			Help:      "Re-attempts issued by the retry wrapper.",
		},
		[]string{"endpoint"},
	)

	unauthorizedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "praxis_client",
			Name:      "unauthorized_total",
			Help:      "401 responses that triggered the session-expiry hook.",
		},
	)

	breakerOpenTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "praxis_client",
			Name:      "breaker_open_total",
			Help:      "Calls rejected by an open circuit breaker.",
		},
		[]string{"endpoint"},
	)
)
