package ifuel

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	samplesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ifuel_samples_processed_total",
		Help: "Telemetry samples run through the engine",
	})

	// SamplesDiscarded is incremented by transports for messages that never reach the engine.
	SamplesDiscarded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ifuel_samples_discarded_total",
		Help: "Telemetry messages dropped before processing",
	}, []string{"reason"})

	lapsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ifuel_laps_accepted_total",
		Help: "Lap boundaries recorded in the lap log",
	})

	lapsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ifuel_laps_rejected_total",
		Help: "Lap boundaries dropped by the validity filters",
	}, []string{"filter"})

	snapshotsDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ifuel_snapshots_delivered_total",
		Help: "Snapshots handed to the renderer",
	})

	snapshotsCoalesced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ifuel_snapshots_coalesced_total",
		Help: "Snapshots replaced by a newer one before delivery",
	})

	deliveryErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ifuel_delivery_errors_total",
		Help: "Renderer deliveries that returned an error",
	})
)
