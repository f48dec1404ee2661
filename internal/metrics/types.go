package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	Runs               prometheus.Counter
	RunFailures        prometheus.Counter
	RunDuration        prometheus.Histogram
	RankedPlayers      prometheus.Gauge
	SkippedRows        prometheus.Counter
	EventsImported     prometheus.Counter
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
