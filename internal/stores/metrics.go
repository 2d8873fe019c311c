package stores

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var staleResponses = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "lexicard_store_stale_responses_total",
		Help: "Responses discarded because newer parameters superseded them",
	},
	[]string{"store"},
)
