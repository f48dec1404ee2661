package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "standings_runs_total",
			Help: "The total number of standings computations started.",
		}),
		RunFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "standings_run_failures_total",
			Help: "The total number of standings computations that failed.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "standings_run_duration_seconds",
			Help:    "The duration of a full standings computation.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		RankedPlayers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "standings_ranked_players",
			Help: "The number of players in the latest standings.",
		}),
		SkippedRows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "standings_skipped_result_rows_total",
			Help: "Result rows dropped for a missing player id or score.",
		}),
		EventsImported: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "standings_events_imported_total",
			Help: "The total number of events written through imports.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "standings_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "standings_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "standings_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.Runs,
		s.RunFailures,
		s.RunDuration,
		s.RankedPlayers,
		s.SkippedRows,
		s.EventsImported,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncRuns() {
	s.Runs.Inc()
}

func (s *Service) IncRunFailures() {
	s.RunFailures.Inc()
}

func (s *Service) ObserveRunDuration(duration float64) {
	s.RunDuration.Observe(duration)
}

func (s *Service) SetRankedPlayers(count int) {
	s.RankedPlayers.Set(float64(count))
}

func (s *Service) AddSkippedRows(count int) {
	s.SkippedRows.Add(float64(count))
}

func (s *Service) AddEventsImported(count int) {
	s.EventsImported.Add(float64(count))
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
