package scoring

import "errors"

// ErrInvalidInput is returned when a round is scored without any valid finishers.
var ErrInvalidInput = errors.New("scoring: no valid finishers in round")

// Finisher is one entrant's raw result in a round. Time is nil when the
// entrant did not record a time.
type Finisher struct {
	PlayerID   string
	PlayerName string
	Round      string
	Time       *float64
}

// Score is the positional score awarded to a finisher.
type Score struct {
	PlayerID   string
	PlayerName string
	Position   int
	Points     float64
}
