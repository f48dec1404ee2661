package standings

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
)

// Aggregator applies events to the player ledgers one at a time, in date
// order. It owns every ledger it creates; nothing outside reads them until
// Snapshot copies them out.
type Aggregator struct {
	players map[string]*Ledger
	// standing holds every player with a cumulative score, in the order of
	// the last cumulative ranking. Ties keep this order.
	standing []*Ledger
	events   []Event
	seen     map[string]struct{}
	leaders  []Leadership
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		players: make(map[string]*Ledger),
		seen:    make(map[string]struct{}),
	}
}

// ApplyEvent scores one event: attendees get their score, absent players who
// have attended before carry their total, attendees are ranked by event
// score and everyone with a total is ranked by it.
func (a *Aggregator) ApplyEvent(event Event, entries []Entry) error {
	if _, ok := a.seen[event.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateEvent, event.ID)
	}
	if n := len(a.events); n > 0 && event.Date.Before(a.events[n-1].Date) {
		return fmt.Errorf("%w: %s (%s) after %s (%s)", ErrEventOutOfOrder,
			event.ID, event.Date.Format("2006-01-02"), a.events[n-1].ID, a.events[n-1].Date.Format("2006-01-02"))
	}
	if err := checkEntries(event.ID, entries); err != nil {
		return err
	}
	a.seen[event.ID] = struct{}{}
	a.events = append(a.events, event)

	attendees := make([]*Ledger, 0, len(entries))
	attended := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.PlayerID == "" {
			continue
		}
		ledger, ok := a.players[entry.PlayerID]
		if !ok {
			ledger = NewLedger(entry.PlayerID)
			a.players[entry.PlayerID] = ledger
		}
		if entry.PlayerName != "" {
			ledger.SetName(entry.PlayerName)
		}
		firstEvent := ledger.EventsAttended() == 0
		if err := ledger.AddScore(event.ID, entry.Score); err != nil {
			return err
		}
		if firstEvent {
			a.standing = append(a.standing, ledger)
		}
		attendees = append(attendees, ledger)
		attended[entry.PlayerID] = struct{}{}
	}

	for _, ledger := range a.standing {
		if _, ok := attended[ledger.ID()]; ok {
			continue
		}
		ledger.AddCumulativeScoreCarry(event.ID)
	}

	sort.SliceStable(attendees, func(i, j int) bool {
		si, _ := attendees[i].EventScore(event.ID)
		sj, _ := attendees[j].EventScore(event.ID)
		return si > sj
	})
	for i, ledger := range attendees {
		ledger.AddEventRank(event.ID, i+1, len(attendees))
	}

	sort.SliceStable(a.standing, func(i, j int) bool {
		ci, _ := a.standing[i].CumulativeScore(event.ID)
		cj, _ := a.standing[j].CumulativeScore(event.ID)
		return ci > cj
	})
	for i, ledger := range a.standing {
		ledger.AddCumulativeRank(event.ID, i+1)
	}

	if len(a.standing) > 0 {
		a.leaders = append(a.leaders, Leadership{
			EventID:  event.ID,
			Date:     event.Date,
			PlayerID: a.standing[0].ID(),
		})
	}

	log.Debug("Applied event", "eventID", event.ID, "attendees", len(attendees), "ranked", len(a.standing))
	return nil
}

// checkEntries rejects an event that scores the same player twice. It runs
// before ApplyEvent touches any state.
func checkEntries(eventID string, entries []Entry) error {
	ids := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.PlayerID == "" {
			continue
		}
		if _, ok := ids[entry.PlayerID]; ok {
			return fmt.Errorf("%w: player %s, event %s", ErrDuplicateScore, entry.PlayerID, eventID)
		}
		ids[entry.PlayerID] = struct{}{}
	}
	return nil
}

// Ledger returns the ledger for a player, if the player has been seen.
func (a *Aggregator) Ledger(playerID string) (*Ledger, bool) {
	l, ok := a.players[playerID]
	return l, ok
}

// Leaders returns the cumulative leader after each applied event, oldest first.
// Events applied before anyone had a score have no leader.
func (a *Aggregator) Leaders() []Leadership {
	out := make([]Leadership, len(a.leaders))
	copy(out, a.leaders)
	return out
}

// Snapshot copies the current state out of the aggregator. Players are
// ordered by their latest cumulative rank.
func (a *Aggregator) Snapshot() *Standings {
	var latest string
	if n := len(a.events); n > 0 {
		latest = a.events[n-1].ID
	}

	st := &Standings{
		Events:  make([]Event, len(a.events)),
		Players: make([]PlayerStanding, 0, len(a.standing)),
	}
	copy(st.Events, a.events)
	for _, ledger := range a.standing {
		st.Players = append(st.Players, ledger.snapshot(latest))
	}

	names := make(map[string]string, len(a.players))
	for id, ledger := range a.players {
		names[id] = ledger.Name()
	}
	st.Champions = TrackChampions(a.leaders)
	for i := range st.Champions {
		st.Champions[i].Name = names[st.Champions[i].PlayerID]
	}
	return st
}

// Compute runs a full pass over the season. Events are sorted by date first,
// keeping input order for events on the same day. Any error discards all
// state and no standings are returned.
func Compute(results []EventResults) (*Standings, error) {
	seen := make(map[string]struct{}, len(results))
	for _, r := range results {
		if _, ok := seen[r.Event.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEvent, r.Event.ID)
		}
		seen[r.Event.ID] = struct{}{}
	}

	ordered := make([]EventResults, len(results))
	copy(ordered, results)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Event.Date.Before(ordered[j].Event.Date)
	})

	agg := NewAggregator()
	for _, r := range ordered {
		if err := agg.ApplyEvent(r.Event, r.Entries); err != nil {
			return nil, fmt.Errorf("failed to apply event %s: %w", r.Event.ID, err)
		}
	}
	return agg.Snapshot(), nil
}
