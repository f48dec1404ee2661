package season

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/season-standings/internal/standings"
	"github.com/vmihailenco/msgpack/v5"
)

// New creates a new SeasonStore.
func New(db *sql.DB) SeasonStore {
	return &store{
		db: db,
	}
}

// UpsertEvent inserts a new event or updates an existing one. Results are
// left untouched.
func (s *store) UpsertEvent(event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := upsertEventRow(s.db, event); err != nil {
		log.Error("Failed to upsert event", "error", err, "eventID", event.ID)
		return err
	}
	return nil
}

// ReplaceResults swaps all results of an event for the given rows, keeping
// their order. Players named in the rows are upserted in the same transaction.
func (s *store) ReplaceResults(eventID string, results []Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if err := replaceResultsTx(tx, eventID, results); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Replaced event results", "eventID", eventID, "rows", len(results))
	return nil
}

// ImportEvents upserts every event and replaces its results in a single
// transaction. If any event fails nothing from the batch is stored.
func (s *store) ImportEvents(events []EventWithResults) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for _, e := range events {
		if _, err := upsertEventRow(tx, e.Event); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to store event %s: %w", e.Event.ID, err)
		}
		if err := replaceResultsTx(tx, e.Event.ID, e.Results); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to store results for event %s: %w", e.Event.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Imported events", "count", len(events))
	return nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func upsertEventRow(db execer, event Event) (sql.Result, error) {
	kind := event.Kind
	if kind == "" {
		kind = KindPoints
	}
	return db.Exec(`
		INSERT INTO events (id, name, event_date, kind)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			event_date = excluded.event_date,
			kind = excluded.kind;
	`, event.ID, event.Name, event.Date.Unix(), string(kind))
}

func replaceResultsTx(tx *sql.Tx, eventID string, results []Result) error {
	if _, err := tx.Exec("DELETE FROM results WHERE event_id = ?", eventID); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO results (event_id, position, round, player_id, player_name, score)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range results {
		var score sql.NullFloat64
		if r.Score != nil {
			score = sql.NullFloat64{Float64: *r.Score, Valid: true}
		}
		if _, err := stmt.Exec(eventID, i, r.Round, r.PlayerID, r.PlayerName, score); err != nil {
			return fmt.Errorf("failed to insert result %d for event %s: %w", i, eventID, err)
		}
		if r.PlayerID == "" {
			continue
		}
		if err := upsertPlayerTx(tx, PlayerInfo{ID: r.PlayerID, Name: r.PlayerName}); err != nil {
			return err
		}
	}
	return nil
}

// ListEvents returns all events ordered by date, then id.
func (s *store) ListEvents() ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, event_date, kind FROM events ORDER BY event_date, id")
	if err != nil {
		log.Error("Failed to query events", "error", err)
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var date int64
		var kind string
		if err := rows.Scan(&e.ID, &e.Name, &date, &kind); err != nil {
			return nil, err
		}
		e.Date = time.Unix(date, 0).UTC()
		e.Kind = EventKind(kind)
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetEventResults returns an event's results in their original order.
func (s *store) GetEventResults(eventID string) ([]Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT round, player_id, player_name, score
		FROM results
		WHERE event_id = ?
		ORDER BY position
	`, eventID)
	if err != nil {
		log.Error("Failed to query event results", "error", err, "eventID", eventID)
		return nil, err
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var score sql.NullFloat64
		if err := rows.Scan(&r.Round, &r.PlayerID, &r.PlayerName, &score); err != nil {
			return nil, err
		}
		if score.Valid {
			v := score.Float64
			r.Score = &v
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// UpsertPlayers inserts or renames players in one transaction.
func (s *store) UpsertPlayers(players []PlayerInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for _, p := range players {
		if err := upsertPlayerTx(tx, p); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// upsertPlayerTx keeps the stored name when the new one is blank.
func upsertPlayerTx(tx *sql.Tx, p PlayerInfo) error {
	_, err := tx.Exec(`
		INSERT INTO players (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = CASE WHEN excluded.name = '' THEN players.name ELSE excluded.name END;
	`, p.ID, p.Name)
	if err != nil {
		log.Error("Failed to upsert player", "error", err, "playerID", p.ID)
	}
	return err
}

func (s *store) GetAllPlayers() ([]PlayerInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name FROM players ORDER BY name, id")
	if err != nil {
		log.Error("Failed to query all players", "error", err)
		return nil, err
	}
	defer rows.Close()

	var players []PlayerInfo
	for rows.Next() {
		var p PlayerInfo
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, p)
	}
	return players, nil
}

// SaveStandings replaces the persisted standings and champions with a new
// snapshot. Either everything is written or nothing is.
func (s *store) SaveStandings(runID string, st *standings.Standings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	var latest sql.NullString
	if e, ok := st.LatestEvent(); ok {
		latest = sql.NullString{String: e.ID, Valid: true}
	}
	_, err = tx.Exec(`
		INSERT INTO standing_runs (id, computed_at, event_count, player_count, latest_event_id)
		VALUES (?, ?, ?, ?, ?)
	`, runID, time.Now().Unix(), len(st.Events), len(st.Players), latest)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record run: %w", err)
	}

	for _, table := range []string{"standings", "champions"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	standingStmt, err := tx.Prepare(`
		INSERT INTO standings (player_id, name, rank, total_score, events_attended, streak_kind, streak_count, snapshot_blob, run_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer standingStmt.Close()

	for _, p := range st.Players {
		blob, err := encodeStanding(p)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to encode standing for %s: %w", p.PlayerID, err)
		}
		_, err = standingStmt.Exec(p.PlayerID, p.Name, p.Rank, p.TotalScore, p.EventsAttended, string(p.Streak.Kind), p.Streak.Count, blob, runID)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert standing for %s: %w", p.PlayerID, err)
		}
	}

	championStmt, err := tx.Prepare(`
		INSERT INTO champions (player_id, name, holder_since, reign_started, current_reign_length, longest_reign_length, total_reigns, is_current_holder, run_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer championStmt.Close()

	for _, r := range st.Champions {
		_, err = championStmt.Exec(r.PlayerID, r.Name, r.HolderSince.Unix(), r.ReignStarted.Unix(),
			r.CurrentReignLength, r.LongestReignLength, r.TotalReigns, r.IsCurrentHolder, runID)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert champion %s: %w", r.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Saved standings", "runID", runID, "players", len(st.Players), "champions", len(st.Champions))
	return nil
}

// encodeStanding serializes a standing with map keys sorted, so identical
// standings always produce identical blobs.
func encodeStanding(p standings.PlayerStanding) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GetStandings returns the persisted standings ordered by rank.
func (s *store) GetStandings() ([]standings.PlayerStanding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT snapshot_blob FROM standings ORDER BY rank, player_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []standings.PlayerStanding
	for rows.Next() {
		var blob []byte
		if err := rows.Scan(&blob); err != nil {
			return nil, err
		}
		var p standings.PlayerStanding
		if err := msgpack.Unmarshal(blob, &p); err != nil {
			return nil, fmt.Errorf("failed to decode standing: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetPlayerStandingByName retrieves the standing of a single player by name.
// It performs a case-insensitive, fuzzy search (e.g., "ann" will match "Annie Kurz").
func (s *store) GetPlayerStandingByName(playerName string) (*standings.PlayerStanding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pattern := "%" + playerName + "%"
	var blob []byte
	err := s.db.QueryRow(`
		SELECT snapshot_blob FROM standings
		WHERE name LIKE ? COLLATE NOCASE
		ORDER BY rank
		LIMIT 1
	`, pattern).Scan(&blob)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Info("No standing found for player matching pattern", "pattern", pattern)
			return nil, fmt.Errorf("%w: '%s'", ErrPlayerNotFound, playerName)
		}
		log.Error("Failed to query standing by name", "error", err, "pattern", pattern)
		return nil, fmt.Errorf("database error: %w", err)
	}

	var p standings.PlayerStanding
	if err := msgpack.Unmarshal(blob, &p); err != nil {
		return nil, fmt.Errorf("failed to decode standing: %w", err)
	}
	log.Debug("Found player standing by name", "player", p.Name)
	return &p, nil
}

// GetChampions returns the persisted reign records in the order they were
// saved, first-ever holder first.
func (s *store) GetChampions() ([]standings.Reign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT player_id, name, holder_since, reign_started, current_reign_length, longest_reign_length, total_reigns, is_current_holder
		FROM champions
		ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reigns []standings.Reign
	for rows.Next() {
		var r standings.Reign
		var since, started int64
		if err := rows.Scan(&r.PlayerID, &r.Name, &since, &started, &r.CurrentReignLength, &r.LongestReignLength, &r.TotalReigns, &r.IsCurrentHolder); err != nil {
			return nil, err
		}
		r.HolderSince = time.Unix(since, 0).UTC()
		r.ReignStarted = time.Unix(started, 0).UTC()
		reigns = append(reigns, r)
	}
	return reigns, rows.Err()
}

// GetRuns returns the most recent standings runs, newest first.
func (s *store) GetRuns(limit int) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(`
		SELECT id, computed_at, event_count, player_count, latest_event_id
		FROM standing_runs
		ORDER BY computed_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var computedAt int64
		var latest sql.NullString
		if err := rows.Scan(&r.ID, &computedAt, &r.EventCount, &r.PlayerCount, &latest); err != nil {
			return nil, err
		}
		r.ComputedAt = time.Unix(computedAt, 0).UTC()
		r.LatestEventID = latest.String
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return
	}

	for _, table := range []string{"champions", "standings", "standing_runs", "results", "events", "players"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "error", err, "table", table)
			tx.Rollback()
			return
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
	}
}

func (s *store) ClearEvent(eventID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM events WHERE id = ?", eventID)
	if err != nil {
		log.Error("Failed to clear event", "error", err, "eventID", eventID)
	}
}
