package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestScoreRound(t *testing.T) {
	t.Run("unsorted times are scored by ascending time", func(t *testing.T) {
		scores, err := ScoreRound([]Finisher{
			{PlayerID: "a", Time: ptr(12.3)},
			{PlayerID: "b", Time: ptr(9.9)},
			{PlayerID: "c", Time: ptr(15.0)},
		})
		require.NoError(t, err)
		require.Len(t, scores, 3)

		assert.Equal(t, []float64{2, 3, 1}, []float64{scores[0].Points, scores[1].Points, scores[2].Points})
		assert.Equal(t, []int{2, 1, 3}, []int{scores[0].Position, scores[1].Position, scores[2].Position})
	})

	t.Run("ties keep input order", func(t *testing.T) {
		scores, err := ScoreRound([]Finisher{
			{PlayerID: "a", Time: ptr(10)},
			{PlayerID: "b", Time: ptr(10)},
		})
		require.NoError(t, err)
		assert.Equal(t, 2.0, scores[0].Points)
		assert.Equal(t, 1.0, scores[1].Points)
	})

	t.Run("missing id or time is excluded from the field", func(t *testing.T) {
		scores, err := ScoreRound([]Finisher{
			{PlayerID: "a", Time: ptr(11)},
			{PlayerID: "", Time: ptr(5)},
			{PlayerID: "c", Time: nil},
			{PlayerID: "d", Time: ptr(10)},
		})
		require.NoError(t, err)
		require.Len(t, scores, 2)
		assert.Equal(t, "a", scores[0].PlayerID)
		assert.Equal(t, 1.0, scores[0].Points)
		assert.Equal(t, "d", scores[1].PlayerID)
		assert.Equal(t, 2.0, scores[1].Points)
	})

	t.Run("a zero time is a valid time", func(t *testing.T) {
		scores, err := ScoreRound([]Finisher{
			{PlayerID: "a", Time: ptr(1)},
			{PlayerID: "b", Time: ptr(0)},
		})
		require.NoError(t, err)
		assert.Equal(t, 2.0, scores[1].Points)
	})

	t.Run("no valid finishers is invalid input", func(t *testing.T) {
		scores, err := ScoreRound(nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Nil(t, scores)

		_, err = ScoreRound([]Finisher{{PlayerID: "a"}})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestScoreEvent(t *testing.T) {
	t.Run("sums points across rounds", func(t *testing.T) {
		scores := ScoreEvent([]Finisher{
			{PlayerID: "a", PlayerName: "Alice", Round: "heat-1", Time: ptr(30)},
			{PlayerID: "b", PlayerName: "Bob", Round: "heat-1", Time: ptr(25)},
			{PlayerID: "b", PlayerName: "Bob", Round: "heat-2", Time: ptr(40)},
			{PlayerID: "a", PlayerName: "Alice", Round: "heat-2", Time: ptr(20)},
			{PlayerID: "c", PlayerName: "Cleo", Round: "heat-2", Time: ptr(50)},
		})
		require.Len(t, scores, 3)

		assert.Equal(t, "a", scores[0].PlayerID)
		assert.Equal(t, 1.0+3.0, scores[0].Points)
		assert.Equal(t, 1, scores[0].Position)
		assert.Equal(t, "b", scores[1].PlayerID)
		assert.Equal(t, 2.0+2.0, scores[1].Points)
		assert.Equal(t, "c", scores[2].PlayerID)
		assert.Equal(t, 1.0, scores[2].Points)
	})

	t.Run("empty rounds are skipped", func(t *testing.T) {
		scores := ScoreEvent([]Finisher{
			{PlayerID: "a", Round: "final", Time: nil},
		})
		assert.Empty(t, scores)
	})
}
