package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncRuns()
	IncRunFailures()
	ObserveRunDuration(duration float64)
	SetRankedPlayers(count int)
	AddSkippedRows(count int)
	AddEventsImported(count int)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
