package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "saucier"

// Process-wide collectors, registered on the default registry and served
// by /metrics.
//
//nolint:gochecknoglobals // Prometheus collectors are package singletons
var (
	DispatcherQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "dispatcher",
		Name:      "queue_depth",
		Help:      "Provider calls waiting for their turn.",
	})

	DispatcherWaitSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "dispatcher",
		Name:      "wait_seconds",
		Help:      "Time a task spent queued before its first attempt.",
		Buckets:   []float64{0.01, 0.1, 1, 5, 15, 30, 60, 120, 300},
	})

	ProviderAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "provider",
		Name:      "attempts_total",
		Help:      "Provider attempts by outcome (success, throttled, error).",
	}, []string{"outcome"})

	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Response cache lookups by result (hit, miss, error).",
	}, []string{"result"})

	Fallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chat",
		Name:      "fallbacks_total",
		Help:      "Fallback answers served, by reason.",
	}, []string{"reason"})

	Extractions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chat",
		Name:      "extractions_total",
		Help:      "Provider answers by extraction outcome (structured, scraped, plain).",
	}, []string{"outcome"})
)
