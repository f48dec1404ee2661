package notifier

import (
	"fmt"
	"sort"

	"github.com/mauv0809/season-standings/internal/standings"
)

// StandingRow is one line of the standings table.
type StandingRow struct {
	Rank           int     `json:"rank"`
	PlayerID       string  `json:"player_id"`
	Name           string  `json:"name"`
	TotalScore     float64 `json:"total_score"`
	EventsAttended int     `json:"events_attended"`
	PointsPerEvent int     `json:"points_per_event"`
	Streak         string  `json:"streak"`
}

// EventRow is one attendee's line in an event summary.
type EventRow struct {
	PlayerID       string  `json:"player_id"`
	Name           string  `json:"name"`
	EventRank      int     `json:"event_rank"`
	EventScore     float64 `json:"event_score"`
	CumulativeRank int     `json:"cumulative_rank"`
}

// EventSummary is the per-event report.
type EventSummary struct {
	Event standings.Event `json:"event"`
	Rows  []EventRow      `json:"rows"`
}

// StandingsTable turns snapshots, already ordered by rank, into table rows.
func StandingsTable(players []standings.PlayerStanding) []StandingRow {
	rows := make([]StandingRow, 0, len(players))
	for _, p := range players {
		rows = append(rows, StandingRow{
			Rank:           p.Rank,
			PlayerID:       p.PlayerID,
			Name:           displayName(p.Name, p.PlayerID),
			TotalScore:     p.TotalScore,
			EventsAttended: p.EventsAttended,
			PointsPerEvent: p.PointsPerEvent(),
			Streak:         FormatStreak(p.Streak),
		})
	}
	return rows
}

// SummarizeEvent lists the attendees of one event ordered by their rank in it.
func SummarizeEvent(st *standings.Standings, eventID string) (EventSummary, bool) {
	event, ok := st.Event(eventID)
	if !ok {
		return EventSummary{}, false
	}

	summary := EventSummary{Event: event, Rows: []EventRow{}}
	for _, p := range st.Players {
		rank, attended := p.EventRanks[eventID]
		if !attended {
			continue
		}
		summary.Rows = append(summary.Rows, EventRow{
			PlayerID:       p.PlayerID,
			Name:           displayName(p.Name, p.PlayerID),
			EventRank:      rank,
			EventScore:     p.EventScores[eventID],
			CumulativeRank: p.CumulativeRanks[eventID],
		})
	}
	sort.SliceStable(summary.Rows, func(i, j int) bool {
		return summary.Rows[i].EventRank < summary.Rows[j].EventRank
	})
	return summary, true
}

// FormatStreak renders a streak as W3, L2 or "-".
func FormatStreak(s standings.Streak) string {
	switch s.Kind {
	case standings.StreakWins:
		return fmt.Sprintf("W%d", s.Count)
	case standings.StreakLosses:
		return fmt.Sprintf("L%d", s.Count)
	}
	return "-"
}

func displayName(name, id string) string {
	if name == "" {
		return id
	}
	return name
}
