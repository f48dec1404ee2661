package processor

import (
	"github.com/mauv0809/season-standings/internal/notifier"
	"github.com/mauv0809/season-standings/internal/season"
	"github.com/mauv0809/season-standings/internal/standings"
)

// Store defines the database operations required by the processor.
type Store interface {
	ImportEvents(events []season.EventWithResults) error
	ListEvents() ([]season.Event, error)
	GetEventResults(eventID string) ([]season.Result, error)
	SaveStandings(runID string, st *standings.Standings) error
}

// Notifier defines the notification operations required by the processor.
type Notifier interface {
	notifier.Notifier
}
