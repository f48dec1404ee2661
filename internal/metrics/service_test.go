package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)

	s.IncRuns()
	s.IncRuns()
	s.IncRunFailures()
	s.SetRankedPlayers(7)
	s.AddSkippedRows(3)
	s.AddEventsImported(2)
	s.ObserveRunDuration(0.2)

	assert.Equal(t, 2.0, testutil.ToFloat64(s.Runs))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.RunFailures))
	assert.Equal(t, 7.0, testutil.ToFloat64(s.RankedPlayers))
	assert.Equal(t, 3.0, testutil.ToFloat64(s.SkippedRows))
	assert.Equal(t, 2.0, testutil.ToFloat64(s.EventsImported))
}

func TestMetricsHandlerServesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)
	s.IncSlackNotifSent()

	rr := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "standings_slack_notifications_sent_total 1")
	assert.Contains(t, string(body), "standings_runs_total 0")
}
