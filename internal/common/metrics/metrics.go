package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GraphQLRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataapi_requests_total",
			Help: "Total number of GraphQL operations issued to the data API",
		},
		[]string{"operation", "status"},
	)

	GraphQLDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "dataapi_request_duration_seconds",
			Help: "Duration of GraphQL operations in seconds",
		},
		[]string{"operation"},
	)

	MutationsReconciled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "view_mutations_reconciled_total",
			Help: "Local collection patches applied after confirmed mutations",
		},
		[]string{"entity"},
	)

	StateInconsistencies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "view_state_inconsistencies_total",
			Help: "Mutation patches that matched no local entity",
		},
		[]string{"entity"},
	)

	AutoModerationHides = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reviews_auto_hidden_total",
			Help: "Reviews hidden by the auto-moderation rule",
		},
	)
)
