package season

import "github.com/mauv0809/season-standings/internal/standings"

// SeasonStore defines the interface for interacting with the season's data.
type SeasonStore interface {
	UpsertEvent(event Event) error
	ReplaceResults(eventID string, results []Result) error
	ImportEvents(events []EventWithResults) error
	ListEvents() ([]Event, error)
	GetEventResults(eventID string) ([]Result, error)
	UpsertPlayers(players []PlayerInfo) error
	GetAllPlayers() ([]PlayerInfo, error)
	SaveStandings(runID string, st *standings.Standings) error
	GetStandings() ([]standings.PlayerStanding, error)
	GetPlayerStandingByName(playerName string) (*standings.PlayerStanding, error)
	GetChampions() ([]standings.Reign, error)
	GetRuns(limit int) ([]Run, error)
	Clear()
	ClearEvent(eventID string)
}
