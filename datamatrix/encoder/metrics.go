package encoder

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	placementCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ecc200",
		Name:      "placement_cache_hits_total",
		Help:      "Placement map lookups served from cache",
	})
	placementCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ecc200",
		Name:      "placement_cache_misses_total",
		Help:      "Placement map lookups that were not cached",
	})
	placementBuilds = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ecc200",
		Name:      "placement_builds_total",
		Help:      "Placement maps built, including redundant concurrent builds",
	})
	symbolsEncoded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ecc200",
		Name:      "symbols_encoded_total",
		Help:      "Data Matrix symbols encoded, by symbol size",
	}, []string{"size"})
)
