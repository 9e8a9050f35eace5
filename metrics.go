package zep

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	constructsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "zep_client",
			Name:      "constructs_total",
			Help:      "Entities successfully hydrated from wire mappings.",
		},
		[]string{"entity"},
	)

	constructFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "zep_client",
			Name:      "construct_failures_total",
			Help:      "Hydrations rejected with a validation error.",
		},
		[]string{"entity"},
	)

	serializationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "zep_client",
			Name:      "serializations_total",
			Help:      "Entities serialized to wire mappings.",
		},
		[]string{"entity"},
	)
)
