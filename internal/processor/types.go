package processor

import (
	"sync"

	"github.com/mauv0809/season-standings/internal/metrics"
	"github.com/mauv0809/season-standings/internal/pubsub"
	"github.com/mauv0809/season-standings/internal/standings"
)

// Processor turns the stored season into standings and reports them.
type Processor struct {
	store    Store
	pubsub   pubsub.PubSubClient
	notifier Notifier
	metrics  metrics.Metrics
	season   string

	// mu serializes runs.
	mu sync.Mutex
}

// RunResult describes one completed run.
type RunResult struct {
	RunID       string               `json:"run_id"`
	DryRun      bool                 `json:"dry_run"`
	SkippedRows int                  `json:"skipped_rows"`
	Standings   *standings.Standings `json:"standings"`
}
