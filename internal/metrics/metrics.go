package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

var (
	SimulationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aero_simulations_total",
			Help: "Total number of route simulations by proposal source",
		},
		[]string{"source"},
	)

	ProposalSourceDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "aero_proposal_source_duration_seconds",
			Help:    "Duration of proposal source calls",
			Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10, 20, 30},
		},
	)

	ProposalFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aero_proposal_failures_total",
			Help: "Proposal source failures that triggered the fallback route set",
		},
		[]string{"reason"},
	)

	ReceiptsAnalyzedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aero_receipts_analyzed_total",
			Help: "Receipt analyses by outcome",
		},
		[]string{"outcome"},
	)

	SimulationEventsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aero_simulation_events_dropped_total",
			Help: "Simulation events dropped because the queue was full",
		},
	)
)
