package pubsub

import (
	"time"

	"cloud.google.com/go/pubsub"
)

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	// EventStandingsComputed is published after a run has been persisted.
	EventStandingsComputed EventType = "standings-computed"
	// EventRecompute asks the service to run a standings computation.
	EventRecompute EventType = "recompute"
)

// StandingsComputed is the payload of EventStandingsComputed.
type StandingsComputed struct {
	RunID         string    `msgpack:"run_id"`
	Season        string    `msgpack:"season"`
	LatestEventID string    `msgpack:"latest_event_id"`
	ChampionID    string    `msgpack:"champion_id"`
	PlayerCount   int       `msgpack:"player_count"`
	EventCount    int       `msgpack:"event_count"`
	ComputedAt    time.Time `msgpack:"computed_at"`
}

// RecomputeRequest is the payload of EventRecompute.
type RecomputeRequest struct {
	DryRun bool   `msgpack:"dry_run"`
	Reason string `msgpack:"reason"`
}
