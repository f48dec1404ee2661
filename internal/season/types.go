package season

import (
	"database/sql"
	"errors"
	"sync"
	"time"
)

// ErrPlayerNotFound is returned when a standings lookup matches no player.
var ErrPlayerNotFound = errors.New("season: player not found")

// store handles all database operations for the season.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// EventKind tells how the scores of an event are to be read.
type EventKind string

const (
	// KindPoints events carry positional points per player.
	KindPoints EventKind = "POINTS"
	// KindRace events carry raw finish times, scored per round.
	KindRace EventKind = "RACE"
)

// Event is a scheduled occasion of the season.
type Event struct {
	ID   string    `json:"id" msgpack:"id"`
	Name string    `json:"name" msgpack:"name"`
	Date time.Time `json:"date" msgpack:"date"`
	Kind EventKind `json:"kind" msgpack:"kind"`
}

// Result is one raw row of an event's results. Score holds points for a
// points event and a finish time for a race; it is nil when left blank.
type Result struct {
	Round      string   `json:"round,omitempty" msgpack:"round"`
	PlayerID   string   `json:"player_id" msgpack:"player_id"`
	PlayerName string   `json:"player_name" msgpack:"player_name"`
	Score      *float64 `json:"score" msgpack:"score"`
}

// PlayerInfo represents a player in the store.
type PlayerInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EventWithResults is an event together with its raw results, as read from
// an import.
type EventWithResults struct {
	Event   Event
	Results []Result
}

// Run describes one persisted standings computation.
type Run struct {
	ID            string    `json:"id"`
	ComputedAt    time.Time `json:"computed_at"`
	EventCount    int       `json:"event_count"`
	PlayerCount   int       `json:"player_count"`
	LatestEventID string    `json:"latest_event_id"`
}
