package standings

import "math"

// LatestEvent returns the most recent event of the pass.
func (s *Standings) LatestEvent() (Event, bool) {
	if len(s.Events) == 0 {
		return Event{}, false
	}
	return s.Events[len(s.Events)-1], true
}

// Event looks up an event by id.
func (s *Standings) Event(eventID string) (Event, bool) {
	for _, e := range s.Events {
		if e.ID == eventID {
			return e, true
		}
	}
	return Event{}, false
}

// Player looks up a player's standing by id.
func (s *Standings) Player(playerID string) (*PlayerStanding, bool) {
	for i := range s.Players {
		if s.Players[i].PlayerID == playerID {
			return &s.Players[i], true
		}
	}
	return nil, false
}

// CurrentChampion returns the reign record of the current leader.
func (s *Standings) CurrentChampion() (*Reign, bool) {
	for i := range s.Champions {
		if s.Champions[i].IsCurrentHolder {
			return &s.Champions[i], true
		}
	}
	return nil, false
}

// PointsPerEvent is the player's total divided by events attended, rounded
// down. It is zero for a player who has not attended anything.
func (p PlayerStanding) PointsPerEvent() int {
	if p.EventsAttended == 0 {
		return 0
	}
	return int(math.Floor(p.TotalScore / float64(p.EventsAttended)))
}
