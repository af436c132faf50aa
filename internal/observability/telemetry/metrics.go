package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Business metrics
	CommandsInterpreted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voicehub_commands_interpreted_total",
		Help: "Total utterances interpreted, by outcome",
	}, []string{"status"})

	CommandsExecuted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voicehub_commands_executed_total",
		Help: "Total device commands executed",
	}, []string{"device", "action", "status"})

	InterpretLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "voicehub_interpret_latency_seconds",
		Help:    "Latency of the interpretation pipeline",
		Buckets: prometheus.DefBuckets,
	})

	// Infrastructure metrics
	HistorySize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "voicehub_history_records",
		Help: "Current number of records in the command history log",
	})
)
