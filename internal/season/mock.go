package season

import (
	"sync"

	"github.com/mauv0809/season-standings/internal/standings"
)

// MockStore is a mock implementation of the SeasonStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	UpsertEventFunc             func(event Event) error
	ReplaceResultsFunc          func(eventID string, results []Result) error
	ImportEventsFunc            func(events []EventWithResults) error
	ListEventsFunc              func() ([]Event, error)
	GetEventResultsFunc         func(eventID string) ([]Result, error)
	UpsertPlayersFunc           func(players []PlayerInfo) error
	GetAllPlayersFunc           func() ([]PlayerInfo, error)
	SaveStandingsFunc           func(runID string, st *standings.Standings) error
	GetStandingsFunc            func() ([]standings.PlayerStanding, error)
	GetPlayerStandingByNameFunc func(playerName string) (*standings.PlayerStanding, error)
	GetChampionsFunc            func() ([]standings.Reign, error)
	GetRunsFunc                 func(limit int) ([]Run, error)
	ClearFunc                   func()
	ClearEventFunc              func(eventID string)

	// Call records
	UpsertEventCalls    []Event
	ReplaceResultsCalls []struct {
		EventID string
		Results []Result
	}
	ImportEventsCalls  [][]EventWithResults
	UpsertPlayersCalls [][]PlayerInfo
	SaveStandingsCalls []struct {
		RunID     string
		Standings *standings.Standings
	}
	GetPlayerStandingByNameCalls []string
	ClearCalls                   int
	ClearEventCalls              []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertEventCalls = nil
	m.ReplaceResultsCalls = nil
	m.ImportEventsCalls = nil
	m.UpsertPlayersCalls = nil
	m.SaveStandingsCalls = nil
	m.GetPlayerStandingByNameCalls = nil
	m.ClearCalls = 0
	m.ClearEventCalls = nil
}

func (m *MockStore) UpsertEvent(event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertEventCalls = append(m.UpsertEventCalls, event)
	if m.UpsertEventFunc != nil {
		return m.UpsertEventFunc(event)
	}
	return nil
}

func (m *MockStore) ReplaceResults(eventID string, results []Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReplaceResultsCalls = append(m.ReplaceResultsCalls, struct {
		EventID string
		Results []Result
	}{eventID, results})
	if m.ReplaceResultsFunc != nil {
		return m.ReplaceResultsFunc(eventID, results)
	}
	return nil
}

func (m *MockStore) ImportEvents(events []EventWithResults) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ImportEventsCalls = append(m.ImportEventsCalls, events)
	if m.ImportEventsFunc != nil {
		return m.ImportEventsFunc(events)
	}
	return nil
}

func (m *MockStore) ListEvents() ([]Event, error) {
	if m.ListEventsFunc != nil {
		return m.ListEventsFunc()
	}
	return nil, nil
}

func (m *MockStore) GetEventResults(eventID string) ([]Result, error) {
	if m.GetEventResultsFunc != nil {
		return m.GetEventResultsFunc(eventID)
	}
	return nil, nil
}

func (m *MockStore) UpsertPlayers(players []PlayerInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertPlayersCalls = append(m.UpsertPlayersCalls, players)
	if m.UpsertPlayersFunc != nil {
		return m.UpsertPlayersFunc(players)
	}
	return nil
}

func (m *MockStore) GetAllPlayers() ([]PlayerInfo, error) {
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) SaveStandings(runID string, st *standings.Standings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveStandingsCalls = append(m.SaveStandingsCalls, struct {
		RunID     string
		Standings *standings.Standings
	}{runID, st})
	if m.SaveStandingsFunc != nil {
		return m.SaveStandingsFunc(runID, st)
	}
	return nil
}

func (m *MockStore) GetStandings() ([]standings.PlayerStanding, error) {
	if m.GetStandingsFunc != nil {
		return m.GetStandingsFunc()
	}
	return nil, nil
}

func (m *MockStore) GetPlayerStandingByName(playerName string) (*standings.PlayerStanding, error) {
	m.mu.Lock()
	m.GetPlayerStandingByNameCalls = append(m.GetPlayerStandingByNameCalls, playerName)
	m.mu.Unlock()
	if m.GetPlayerStandingByNameFunc != nil {
		return m.GetPlayerStandingByNameFunc(playerName)
	}
	return nil, ErrPlayerNotFound
}

func (m *MockStore) GetChampions() ([]standings.Reign, error) {
	if m.GetChampionsFunc != nil {
		return m.GetChampionsFunc()
	}
	return nil, nil
}

func (m *MockStore) GetRuns(limit int) ([]Run, error) {
	if m.GetRunsFunc != nil {
		return m.GetRunsFunc(limit)
	}
	return nil, nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	m.ClearCalls++
	m.mu.Unlock()
	if m.ClearFunc != nil {
		m.ClearFunc()
	}
}

func (m *MockStore) ClearEvent(eventID string) {
	m.mu.Lock()
	m.ClearEventCalls = append(m.ClearEventCalls, eventID)
	m.mu.Unlock()
	if m.ClearEventFunc != nil {
		m.ClearEventFunc(eventID)
	}
}
