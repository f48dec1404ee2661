package season_test

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/mauv0809/season-standings/internal/database"
	"github.com/mauv0809/season-standings/internal/season"
	"github.com/mauv0809/season-standings/internal/standings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (season.SeasonStore, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return season.New(db), db, dbTeardown
}

func ptr(v float64) *float64 { return &v }

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestUpsertAndListEvents(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.UpsertEvent(season.Event{ID: "e2", Name: "Round 2", Date: day(8), Kind: season.KindRace}))
	require.NoError(t, store.UpsertEvent(season.Event{ID: "e1", Name: "Round 1", Date: day(1)}))
	require.NoError(t, store.UpsertEvent(season.Event{ID: "e1", Name: "Opening Round", Date: day(1)}))

	events, err := store.ListEvents()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "e1", events[0].ID)
	assert.Equal(t, "Opening Round", events[0].Name)
	assert.Equal(t, season.KindPoints, events[0].Kind)
	assert.True(t, day(1).Equal(events[0].Date))
	assert.Equal(t, season.KindRace, events[1].Kind)
}

func TestReplaceResultsKeepsOrderAndBlankScores(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.UpsertEvent(season.Event{ID: "e1", Name: "Round 1", Date: day(1)}))
	require.NoError(t, store.ReplaceResults("e1", []season.Result{
		{PlayerID: "b", PlayerName: "Bea", Score: ptr(3)},
		{PlayerID: "a", PlayerName: "Ann", Score: nil},
		{PlayerID: "c", PlayerName: "Cal", Score: ptr(1.5)},
	}))

	results, err := store.GetEventResults("e1")
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "b", results[0].PlayerID)
	assert.Nil(t, results[1].Score)
	require.NotNil(t, results[2].Score)
	assert.Equal(t, 1.5, *results[2].Score)

	// Replacing drops the previous rows.
	require.NoError(t, store.ReplaceResults("e1", []season.Result{{PlayerID: "a", PlayerName: "Ann", Score: ptr(2)}}))
	results, err = store.GetEventResults("e1")
	require.NoError(t, err)
	assert.Len(t, results, 1)

	players, err := store.GetAllPlayers()
	require.NoError(t, err)
	assert.Len(t, players, 3)
}

func TestReplaceResultsUnknownEvent(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	err := store.ReplaceResults("missing", []season.Result{{PlayerID: "a", Score: ptr(1)}})
	assert.Error(t, err)
}

func TestUpsertPlayersKeepsNameWhenBlank(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.UpsertPlayers([]season.PlayerInfo{{ID: "a", Name: "Ann"}}))
	require.NoError(t, store.UpsertPlayers([]season.PlayerInfo{{ID: "a", Name: ""}, {ID: "b", Name: "Bea"}}))

	players, err := store.GetAllPlayers()
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Ann", players[0].Name)
	assert.Equal(t, "Bea", players[1].Name)
}

func computeSample(t *testing.T) *standings.Standings {
	t.Helper()
	st, err := standings.Compute([]standings.EventResults{
		{
			Event: standings.Event{ID: "e1", Name: "Round 1", Date: day(1)},
			Entries: []standings.Entry{
				{PlayerID: "a", PlayerName: "Annie Kurz", Score: 3},
				{PlayerID: "b", PlayerName: "Bea", Score: 2},
				{PlayerID: "c", PlayerName: "Cal", Score: 1},
			},
		},
		{
			Event: standings.Event{ID: "e2", Name: "Round 2", Date: day(8)},
			Entries: []standings.Entry{
				{PlayerID: "b", PlayerName: "Bea", Score: 3},
				{PlayerID: "c", PlayerName: "Cal", Score: 2},
			},
		},
	})
	require.NoError(t, err)
	return st
}

func TestSaveAndGetStandings(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	st := computeSample(t)
	require.NoError(t, store.SaveStandings("run-1", st))

	players, err := store.GetStandings()
	require.NoError(t, err)
	require.Len(t, players, len(st.Players))
	for i, p := range players {
		assert.Equal(t, st.Players[i].PlayerID, p.PlayerID)
		assert.Equal(t, st.Players[i].Rank, p.Rank)
		assert.Equal(t, st.Players[i].TotalScore, p.TotalScore)
		assert.Equal(t, st.Players[i].CumulativeScores, p.CumulativeScores)
		assert.Equal(t, st.Players[i].Streak, p.Streak)
	}

	champions, err := store.GetChampions()
	require.NoError(t, err)
	require.Len(t, champions, len(st.Champions))
	for i, c := range champions {
		assert.Equal(t, st.Champions[i].PlayerID, c.PlayerID)
		assert.True(t, st.Champions[i].HolderSince.Equal(c.HolderSince))
		assert.Equal(t, st.Champions[i].IsCurrentHolder, c.IsCurrentHolder)
	}

	runs, err := store.GetRuns(5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-1", runs[0].ID)
	assert.Equal(t, "e2", runs[0].LatestEventID)
	assert.Equal(t, 3, runs[0].PlayerCount)
}

func TestSaveStandingsReplacesPrevious(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.SaveStandings("run-1", computeSample(t)))
	require.NoError(t, store.SaveStandings("run-2", &standings.Standings{}))

	players, err := store.GetStandings()
	require.NoError(t, err)
	assert.Empty(t, players)

	runs, err := store.GetRuns(0)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestSaveStandingsDuplicateRunIsAtomic(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	st := computeSample(t)
	require.NoError(t, store.SaveStandings("run-1", st))
	assert.Error(t, store.SaveStandings("run-1", &standings.Standings{}))

	players, err := store.GetStandings()
	require.NoError(t, err)
	assert.Len(t, players, len(st.Players))
}

func TestGetPlayerStandingByName(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.SaveStandings("run-1", computeSample(t)))

	p, err := store.GetPlayerStandingByName("ann")
	require.NoError(t, err)
	assert.Equal(t, "a", p.PlayerID)

	_, err = store.GetPlayerStandingByName("zed")
	assert.ErrorIs(t, err, season.ErrPlayerNotFound)
}

func TestClearAndClearEvent(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.UpsertEvent(season.Event{ID: "e1", Date: day(1)}))
	require.NoError(t, store.UpsertEvent(season.Event{ID: "e2", Date: day(2)}))
	require.NoError(t, store.ReplaceResults("e1", []season.Result{{PlayerID: "a", Score: ptr(1)}}))

	store.ClearEvent("e1")
	events, err := store.ListEvents()
	require.NoError(t, err)
	require.Len(t, events, 1)
	results, err := store.GetEventResults("e1")
	require.NoError(t, err)
	assert.Empty(t, results)

	store.Clear()
	events, err = store.ListEvents()
	require.NoError(t, err)
	assert.Empty(t, events)
	players, err := store.GetAllPlayers()
	require.NoError(t, err)
	assert.Empty(t, players)
}

func snapshotBlobs(t *testing.T, db *sql.DB) map[string][]byte {
	t.Helper()
	rows, err := db.Query("SELECT player_id, snapshot_blob FROM standings")
	require.NoError(t, err)
	defer rows.Close()

	blobs := make(map[string][]byte)
	for rows.Next() {
		var id string
		var blob []byte
		require.NoError(t, rows.Scan(&id, &blob))
		blobs[id] = blob
	}
	require.NoError(t, rows.Err())
	return blobs
}

func TestSaveStandingsBlobsAreDeterministic(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.SaveStandings("run-0", computeSample(t)))
	want := snapshotBlobs(t, db)
	require.Len(t, want, 3)

	for i := 1; i <= 20; i++ {
		require.NoError(t, store.SaveStandings(fmt.Sprintf("run-%d", i), computeSample(t)))
		assert.Equal(t, want, snapshotBlobs(t, db), "run %d", i)
	}
}

func TestImportEvents(t *testing.T) {
	t.Run("stores every event with its results", func(t *testing.T) {
		store, _, teardown := setupTestDB(t)
		defer teardown()

		require.NoError(t, store.ImportEvents([]season.EventWithResults{
			{Event: season.Event{ID: "e1", Date: day(1)}, Results: []season.Result{{PlayerID: "a", PlayerName: "Ann", Score: ptr(2)}}},
			{Event: season.Event{ID: "e2", Date: day(8), Kind: season.KindRace}, Results: []season.Result{{Round: "r1", PlayerID: "b", PlayerName: "Bea", Score: ptr(41.5)}}},
		}))

		events, err := store.ListEvents()
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, season.KindRace, events[1].Kind)
		results, err := store.GetEventResults("e2")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "r1", results[0].Round)
		players, err := store.GetAllPlayers()
		require.NoError(t, err)
		assert.Len(t, players, 2)
	})

	t.Run("a failing event stores nothing from the batch", func(t *testing.T) {
		store, db, teardown := setupTestDB(t)
		defer teardown()

		_, err := db.Exec(`
			CREATE TRIGGER reject_bad_event BEFORE INSERT ON events
			WHEN NEW.id = 'bad'
			BEGIN SELECT RAISE(ABORT, 'event rejected'); END;
		`)
		require.NoError(t, err)

		err = store.ImportEvents([]season.EventWithResults{
			{Event: season.Event{ID: "e1", Date: day(1)}, Results: []season.Result{{PlayerID: "a", PlayerName: "Ann", Score: ptr(2)}}},
			{Event: season.Event{ID: "bad", Date: day(8)}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad")

		events, err := store.ListEvents()
		require.NoError(t, err)
		assert.Empty(t, events)
		results, err := store.GetEventResults("e1")
		require.NoError(t, err)
		assert.Empty(t, results)
		players, err := store.GetAllPlayers()
		require.NoError(t, err)
		assert.Empty(t, players)
	})
}
