package rescache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "praxis_client",
			Name:      "cache_hits_total",
			Help:      "Reads served from the resource cache without a network call.",
		},
		[]string{"key"},
	)

	cacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "praxis_client",
			Name:      "cache_misses_total",
			Help:      "Reads that fell through to the underlying request.",
		},
		[]string{"key"},
	)
)
