package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_AddScore(t *testing.T) {
	l := NewLedger("p1")

	require.NoError(t, l.AddScore("e1", 10))
	require.NoError(t, l.AddScore("e2", 0))

	assert.Equal(t, 10.0, l.TotalScore())
	assert.Equal(t, 2, l.EventsAttended())

	score, ok := l.EventScore("e2")
	assert.True(t, ok, "a zero score is still a recorded score")
	assert.Equal(t, 0.0, score)

	cum, ok := l.CumulativeScore("e1")
	require.True(t, ok)
	assert.Equal(t, 10.0, cum)

	t.Run("scoring the same event twice fails", func(t *testing.T) {
		err := l.AddScore("e1", 3)
		assert.ErrorIs(t, err, ErrDuplicateScore)
		assert.Equal(t, 10.0, l.TotalScore())
		assert.Equal(t, 2, l.EventsAttended())
	})
}

func TestLedger_AddCumulativeScoreCarry(t *testing.T) {
	l := NewLedger("p1")
	require.NoError(t, l.AddScore("e1", 7))

	l.AddCumulativeScoreCarry("e2")
	l.AddCumulativeScoreCarry("e2")

	cum, ok := l.CumulativeScore("e2")
	require.True(t, ok)
	assert.Equal(t, 7.0, cum)
	assert.Equal(t, 7.0, l.TotalScore())
	assert.Equal(t, 1, l.EventsAttended())

	_, ok = l.EventScore("e2")
	assert.False(t, ok, "carrying a total does not record attendance")
}

func TestLedger_AddEventRank(t *testing.T) {
	t.Run("top half is a win", func(t *testing.T) {
		l := NewLedger("p1")
		l.AddEventRank("e1", 2, 4)
		assert.Equal(t, Streak{Kind: StreakWins, Count: 1}, l.Streak())
	})

	t.Run("middle of an odd field is a loss", func(t *testing.T) {
		l := NewLedger("p1")
		l.AddEventRank("e1", 3, 5)
		assert.Equal(t, Streak{Kind: StreakLosses, Count: 1}, l.Streak())
	})

	t.Run("sole participant loses", func(t *testing.T) {
		l := NewLedger("p1")
		l.AddEventRank("e1", 1, 1)
		assert.Equal(t, StreakLosses, l.Streak().Kind)
	})

	t.Run("same outcome increments and a flip resets to one", func(t *testing.T) {
		l := NewLedger("p1")
		l.AddEventRank("e1", 1, 4)
		l.AddEventRank("e2", 2, 4)
		l.AddEventRank("e3", 1, 2)
		assert.Equal(t, Streak{Kind: StreakWins, Count: 3}, l.Streak())

		l.AddEventRank("e4", 4, 4)
		assert.Equal(t, Streak{Kind: StreakLosses, Count: 1}, l.Streak())
		l.AddEventRank("e5", 3, 4)
		assert.Equal(t, Streak{Kind: StreakLosses, Count: 2}, l.Streak())

		rank, ok := l.EventRank("e4")
		require.True(t, ok)
		assert.Equal(t, 4, rank)
	})
}

func TestLedger_MissingEntriesAreAbsent(t *testing.T) {
	l := NewLedger("p1")

	_, ok := l.EventScore("nope")
	assert.False(t, ok)
	_, ok = l.CumulativeScore("nope")
	assert.False(t, ok)
	_, ok = l.EventRank("nope")
	assert.False(t, ok)
	_, ok = l.CumulativeRank("nope")
	assert.False(t, ok)
	assert.Equal(t, StreakNone, l.Streak().Kind)
}

func TestLedger_SnapshotDoesNotAlias(t *testing.T) {
	l := NewLedger("p1")
	require.NoError(t, l.AddScore("e1", 4))
	l.AddCumulativeRank("e1", 1)

	ps := l.snapshot("e1")
	ps.EventScores["e1"] = 100
	ps.CumulativeRanks["e1"] = 9

	score, _ := l.EventScore("e1")
	rank, _ := l.CumulativeRank("e1")
	assert.Equal(t, 4.0, score)
	assert.Equal(t, 1, rank)
	assert.Equal(t, 1, ps.Rank)
}
