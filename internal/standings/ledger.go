package standings

import "fmt"

// Ledger is the running record of a single player across the season.
// A missing map entry means the player did not attend or was not ranked,
// never zero.
type Ledger struct {
	id              string
	name            string
	eventsAttended  int
	totalScore      float64
	eventScore      map[string]float64
	cumulativeScore map[string]float64
	eventRank       map[string]int
	cumulativeRank  map[string]int
	streak          Streak
}

// NewLedger creates an empty ledger for the given player id.
func NewLedger(id string) *Ledger {
	return &Ledger{
		id:              id,
		eventScore:      make(map[string]float64),
		cumulativeScore: make(map[string]float64),
		eventRank:       make(map[string]int),
		cumulativeRank:  make(map[string]int),
	}
}

func (l *Ledger) ID() string { return l.id }
func (l *Ledger) Name() string { return l.name }
func (l *Ledger) EventsAttended() int { return l.eventsAttended }
func (l *Ledger) TotalScore() float64 { return l.totalScore }
func (l *Ledger) Streak() Streak { return l.streak }
func (l *Ledger) SetName(name string) { l.name = name }

// AddScore records the player's score for an event they attended.
func (l *Ledger) AddScore(eventID string, score float64) error {
	if _, ok := l.eventScore[eventID]; ok {
		return fmt.Errorf("%w: player %s, event %s", ErrDuplicateScore, l.id, eventID)
	}
	l.totalScore += score
	l.eventsAttended++
	l.eventScore[eventID] = score
	l.cumulativeScore[eventID] = l.totalScore
	return nil
}

// AddCumulativeScoreCarry carries the current total into an event the player
// skipped.
func (l *Ledger) AddCumulativeScoreCarry(eventID string) {
	l.cumulativeScore[eventID] = l.totalScore
}

// AddEventRank records the player's finishing rank and advances the streak.
// A rank in the top half of the field (rank <= participants/2) is a win.
func (l *Ledger) AddEventRank(eventID string, rank, participants int) {
	l.eventRank[eventID] = rank

	kind := StreakLosses
	if float64(rank) <= float64(participants)/2 {
		kind = StreakWins
	}
	if l.streak.Kind != kind {
		l.streak = Streak{Kind: kind, Count: 1}
		return
	}
	l.streak.Count++
}

// AddCumulativeRank records the player's season rank as of the event.
func (l *Ledger) AddCumulativeRank(eventID string, rank int) {
	l.cumulativeRank[eventID] = rank
}

func (l *Ledger) EventScore(eventID string) (float64, bool) {
	v, ok := l.eventScore[eventID]
	return v, ok
}

func (l *Ledger) CumulativeScore(eventID string) (float64, bool) {
	v, ok := l.cumulativeScore[eventID]
	return v, ok
}

func (l *Ledger) EventRank(eventID string) (int, bool) {
	v, ok := l.eventRank[eventID]
	return v, ok
}

func (l *Ledger) CumulativeRank(eventID string) (int, bool) {
	v, ok := l.cumulativeRank[eventID]
	return v, ok
}

// snapshot returns a copy that shares no maps with the ledger.
func (l *Ledger) snapshot(latestEventID string) PlayerStanding {
	ps := PlayerStanding{
		PlayerID:         l.id,
		Name:             l.name,
		EventsAttended:   l.eventsAttended,
		TotalScore:       l.totalScore,
		EventScores:      make(map[string]float64, len(l.eventScore)),
		CumulativeScores: make(map[string]float64, len(l.cumulativeScore)),
		EventRanks:       make(map[string]int, len(l.eventRank)),
		CumulativeRanks:  make(map[string]int, len(l.cumulativeRank)),
		Streak:           l.streak,
	}
	for k, v := range l.eventScore {
		ps.EventScores[k] = v
	}
	for k, v := range l.cumulativeScore {
		ps.CumulativeScores[k] = v
	}
	for k, v := range l.eventRank {
		ps.EventRanks[k] = v
	}
	for k, v := range l.cumulativeRank {
		ps.CumulativeRanks[k] = v
	}
	if rank, ok := l.cumulativeRank[latestEventID]; ok {
		ps.Rank = rank
	}
	return ps
}
