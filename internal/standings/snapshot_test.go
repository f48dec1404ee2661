package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotAccessors(t *testing.T) {
	t.Run("empty season", func(t *testing.T) {
		st, err := Compute(nil)
		require.NoError(t, err)

		_, ok := st.LatestEvent()
		assert.False(t, ok)
		_, ok = st.Event("e1")
		assert.False(t, ok)
		_, ok = st.Player("A")
		assert.False(t, ok)
		_, ok = st.CurrentChampion()
		assert.False(t, ok)
	})

	t.Run("lead changes hands", func(t *testing.T) {
		st, err := Compute([]EventResults{
			event("e1", 1, entry("A", 3), entry("B", 2)),
			event("e2", 8, entry("B", 4)),
		})
		require.NoError(t, err)

		latest, ok := st.LatestEvent()
		require.True(t, ok)
		assert.Equal(t, "e2", latest.ID)

		first, ok := st.Event("e1")
		require.True(t, ok)
		assert.Equal(t, day(1), first.Date)
		_, ok = st.Event("missing")
		assert.False(t, ok)

		champ, ok := st.CurrentChampion()
		require.True(t, ok)
		assert.Equal(t, "B", champ.PlayerID)
	})
}
