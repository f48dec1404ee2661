package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaders(ids ...string) []Leadership {
	out := make([]Leadership, len(ids))
	for i, id := range ids {
		out[i] = Leadership{EventID: "e" + string(rune('1'+i)), Date: day(i + 1), PlayerID: id}
	}
	return out
}

func TestTrackChampions(t *testing.T) {
	t.Run("alternating reigns", func(t *testing.T) {
		reigns := TrackChampions(leaders("A", "A", "B", "B", "B", "A"))
		require.Len(t, reigns, 2)

		a, b := reigns[0], reigns[1]
		assert.Equal(t, "A", a.PlayerID)
		assert.Equal(t, 3, a.TotalReigns)
		assert.Equal(t, 2, a.LongestReignLength)
		assert.Equal(t, 1, a.CurrentReignLength)
		assert.True(t, a.IsCurrentHolder)
		assert.Equal(t, day(1), a.HolderSince)
		assert.Equal(t, day(6), a.ReignStarted)

		assert.Equal(t, "B", b.PlayerID)
		assert.Equal(t, 3, b.TotalReigns)
		assert.Equal(t, 3, b.LongestReignLength)
		assert.False(t, b.IsCurrentHolder)
		assert.Equal(t, day(3), b.HolderSince)
	})

	t.Run("single holder", func(t *testing.T) {
		reigns := TrackChampions(leaders("A", "A", "A"))
		require.Len(t, reigns, 1)
		assert.Equal(t, 3, reigns[0].CurrentReignLength)
		assert.Equal(t, 3, reigns[0].LongestReignLength)
		assert.True(t, reigns[0].IsCurrentHolder)
	})

	t.Run("ordered by first time holding the lead", func(t *testing.T) {
		reigns := TrackChampions(leaders("C", "A", "B", "C"))
		require.Len(t, reigns, 3)
		assert.Equal(t, []string{"C", "A", "B"}, []string{reigns[0].PlayerID, reigns[1].PlayerID, reigns[2].PlayerID})
		assert.True(t, reigns[0].IsCurrentHolder)
		assert.Equal(t, 2, reigns[0].TotalReigns)
		assert.Equal(t, 1, reigns[0].LongestReignLength)
	})

	t.Run("no leaders", func(t *testing.T) {
		assert.Empty(t, TrackChampions(nil))
	})
}

func TestCompute_ChampionNames(t *testing.T) {
	st, err := Compute([]EventResults{
		event("e1", 1, entry("A", 5), entry("B", 1)),
		event("e2", 2, entry("B", 9)),
	})
	require.NoError(t, err)
	require.Len(t, st.Champions, 2)
	assert.Equal(t, "Player A", st.Champions[0].Name)

	current, ok := st.CurrentChampion()
	require.True(t, ok)
	assert.Equal(t, "B", current.PlayerID)
}

func TestPlayerStanding_PointsPerEvent(t *testing.T) {
	assert.Equal(t, 3, PlayerStanding{TotalScore: 10, EventsAttended: 3}.PointsPerEvent())
	assert.Equal(t, 0, PlayerStanding{}.PointsPerEvent())
}
