package standings

import "sort"

// ChampionTracker derives reign statistics from the sequence of cumulative
// leaders, fed oldest first.
type ChampionTracker struct {
	records  map[string]*Reign
	created  []string
	current  string
	observed int
}

// NewChampionTracker creates an empty tracker.
func NewChampionTracker() *ChampionTracker {
	return &ChampionTracker{records: make(map[string]*Reign)}
}

// Observe records the leader of the next event.
func (c *ChampionTracker) Observe(l Leadership) {
	rec, ok := c.records[l.PlayerID]
	if !ok {
		rec = &Reign{PlayerID: l.PlayerID, HolderSince: l.Date}
		c.records[l.PlayerID] = rec
		c.created = append(c.created, l.PlayerID)
	}
	rec.TotalReigns++

	switch {
	case c.observed == 0:
		rec.CurrentReignLength = 1
		rec.ReignStarted = l.Date
	case l.PlayerID == c.current:
		rec.CurrentReignLength++
	default:
		for _, r := range c.records {
			r.IsCurrentHolder = false
		}
		rec.CurrentReignLength = 1
		rec.ReignStarted = l.Date
	}

	if rec.CurrentReignLength > rec.LongestReignLength {
		rec.LongestReignLength = rec.CurrentReignLength
	}
	rec.IsCurrentHolder = true
	c.current = l.PlayerID
	c.observed++
}

// Records returns copies of every reign record, first-ever holder first.
func (c *ChampionTracker) Records() []Reign {
	out := make([]Reign, 0, len(c.created))
	for _, id := range c.created {
		out = append(out, *c.records[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].HolderSince.Before(out[j].HolderSince)
	})
	return out
}

// TrackChampions runs a tracker over a full leader sequence.
func TrackChampions(leaders []Leadership) []Reign {
	tracker := NewChampionTracker()
	for _, l := range leaders {
		tracker.Observe(l)
	}
	return tracker.Records()
}
