package main

import "github.com/prometheus/client_golang/prometheus"

var (
	linesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rtt_smoother_lines_total",
			Help: "Input lines processed by result",
		},
		[]string{"result"},
	)

	lastRunTimestamp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rtt_smoother_last_run_timestamp_seconds",
			Help: "Wall-clock time the textfile was last written",
		},
	)
)

func registerMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		linesTotal,
		lastRunTimestamp,
	)
}
