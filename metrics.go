package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheInvalidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "praxis_client",
			Name:      "cache_invalidations_total",
			Help:      "Cache keys dropped by mutating endpoint bindings.",
		},
		[]string{"key"},
	)

	prefetchFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "praxis_client",
			Name:      "prefetch_failures_total",
			Help:      "Background prefetches whose error was discarded.",
		},
	)
)
