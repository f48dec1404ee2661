// Package scoring turns raw race finish times into positional points.
package scoring

import (
	"sort"

	"github.com/charmbracelet/log"
)

// ScoreRound assigns n - position + 1 points to every valid finisher of a
// single round, where n is the number of valid finishers and position is the
// 1-based rank by ascending time. Equal times keep their input order.
// Entrants without an id or a time are dropped and do not count towards n.
// The returned scores follow the input order of the valid finishers.
func ScoreRound(finishers []Finisher) ([]Score, error) {
	valid := make([]Finisher, 0, len(finishers))
	for _, f := range finishers {
		if f.PlayerID == "" || f.Time == nil {
			continue
		}
		valid = append(valid, f)
	}
	if len(valid) == 0 {
		return nil, ErrInvalidInput
	}

	byTime := make([]int, len(valid))
	for i := range byTime {
		byTime[i] = i
	}
	sort.SliceStable(byTime, func(i, j int) bool {
		return *valid[byTime[i]].Time < *valid[byTime[j]].Time
	})

	n := len(valid)
	scores := make([]Score, n)
	for pos, idx := range byTime {
		position := pos + 1
		scores[idx] = Score{
			PlayerID:   valid[idx].PlayerID,
			PlayerName: valid[idx].PlayerName,
			Position:   position,
			Points:     float64(n - position + 1),
		}
	}
	return scores, nil
}

// ScoreEvent scores every round of a race event and sums each player's
// points across rounds. Rounds are taken in order of first appearance and a
// round with no valid finishers contributes nothing. Players are returned in
// order of first appearance across the scored rounds.
func ScoreEvent(finishers []Finisher) []Score {
	var roundOrder []string
	rounds := make(map[string][]Finisher)
	for _, f := range finishers {
		if _, ok := rounds[f.Round]; !ok {
			roundOrder = append(roundOrder, f.Round)
		}
		rounds[f.Round] = append(rounds[f.Round], f)
	}

	var totals []Score
	index := make(map[string]int)
	for _, round := range roundOrder {
		scores, err := ScoreRound(rounds[round])
		if err != nil {
			log.Debug("Skipping round without finishers", "round", round)
			continue
		}
		for _, s := range scores {
			i, ok := index[s.PlayerID]
			if !ok {
				index[s.PlayerID] = len(totals)
				totals = append(totals, Score{PlayerID: s.PlayerID, PlayerName: s.PlayerName})
				i = len(totals) - 1
			}
			totals[i].Points += s.Points
			if s.PlayerName != "" {
				totals[i].PlayerName = s.PlayerName
			}
			// Position of a multi-round event is the best round finish.
			if totals[i].Position == 0 || s.Position < totals[i].Position {
				totals[i].Position = s.Position
			}
		}
	}
	return totals
}
