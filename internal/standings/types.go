package standings

import (
	"errors"
	"time"
)

var (
	// ErrDuplicateEvent is returned when two events share an id.
	ErrDuplicateEvent = errors.New("standings: duplicate event id")
	// ErrDuplicateScore is returned when a player is scored twice for one event.
	ErrDuplicateScore = errors.New("standings: event already scored for player")
	// ErrEventOutOfOrder is returned when an event is older than the last applied one.
	ErrEventOutOfOrder = errors.New("standings: event applied out of date order")
)

// Event is one scored occasion of the season.
type Event struct {
	ID   string    `json:"id" msgpack:"id"`
	Name string    `json:"name,omitempty" msgpack:"name"`
	Date time.Time `json:"date" msgpack:"date"`
}

// Entry is a player's positional score for one event, in the order the
// player was added to the event.
type Entry struct {
	PlayerID   string
	PlayerName string
	Score      float64
}

// EventResults pairs an event with its entries.
type EventResults struct {
	Event   Event
	Entries []Entry
}

// StreakKind is the outcome a streak is counting.
type StreakKind string

const (
	StreakNone   StreakKind = ""
	StreakWins   StreakKind = "wins"
	StreakLosses StreakKind = "losses"
)

// Streak is a run of consecutive event outcomes of the same kind.
type Streak struct {
	Kind  StreakKind `json:"kind" msgpack:"kind"`
	Count int        `json:"count" msgpack:"count"`
}

// Leadership names the cumulative leader after an event.
type Leadership struct {
	EventID  string
	Date     time.Time
	PlayerID string
}

// Reign is the championship history of a player who has led the standings.
type Reign struct {
	PlayerID string `json:"player_id" msgpack:"player_id"`
	Name     string `json:"name" msgpack:"name"`
	// HolderSince is the date the player first took the lead.
	HolderSince time.Time `json:"holder_since" msgpack:"holder_since"`
	// ReignStarted is the date the player's latest unbroken run began.
	ReignStarted       time.Time `json:"reign_started" msgpack:"reign_started"`
	CurrentReignLength int       `json:"current_reign_length" msgpack:"current_reign_length"`
	LongestReignLength int       `json:"longest_reign_length" msgpack:"longest_reign_length"`
	// TotalReigns counts every event the player led, contiguous or not.
	TotalReigns     int  `json:"total_reigns" msgpack:"total_reigns"`
	IsCurrentHolder bool `json:"is_current_holder" msgpack:"is_current_holder"`
}

// PlayerStanding is a read-only copy of a player's ledger.
type PlayerStanding struct {
	PlayerID         string             `json:"player_id" msgpack:"player_id"`
	Name             string             `json:"name" msgpack:"name"`
	EventsAttended   int                `json:"events_attended" msgpack:"events_attended"`
	TotalScore       float64            `json:"total_score" msgpack:"total_score"`
	Rank             int                `json:"rank" msgpack:"rank"`
	EventScores      map[string]float64 `json:"event_scores" msgpack:"event_scores"`
	CumulativeScores map[string]float64 `json:"cumulative_scores" msgpack:"cumulative_scores"`
	EventRanks       map[string]int     `json:"event_ranks" msgpack:"event_ranks"`
	CumulativeRanks  map[string]int     `json:"cumulative_ranks" msgpack:"cumulative_ranks"`
	Streak           Streak             `json:"streak" msgpack:"streak"`
}

// Standings is the finalized result of one computation pass.
type Standings struct {
	Events    []Event          `json:"events" msgpack:"events"`
	Players   []PlayerStanding `json:"players" msgpack:"players"`
	Champions []Reign          `json:"champions" msgpack:"champions"`
}
