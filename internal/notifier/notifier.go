package notifier

import "github.com/mauv0809/season-standings/internal/standings"

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// After a standings run
	SendStandings(st *standings.Standings, season string, dryRun bool) error
	SendEventSummary(st *standings.Standings, eventID string, dryRun bool) error
	SendChampions(reigns []standings.Reign, dryRun bool) error

	// For formatting responses for slash commands
	FormatStandingsResponse(players []standings.PlayerStanding) (any, error)
	FormatPlayerStandingResponse(player *standings.PlayerStanding, query string) (any, error)
	FormatPlayerNotFoundResponse(query string) (any, error)
	FormatChampionsResponse(reigns []standings.Reign) (any, error)
}
