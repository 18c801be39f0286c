package club

import (
	"context"
	"sync"

	"github.com/mauv0809/cricket-stats/internal/cricket"
)

var _ ClubStore = (*MockStore)(nil)

// MockStore is a mock implementation of the ClubStore interface for testing.
// Unset funcs return empty results, or ErrNotFound for single-row lookups.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreateMatchFunc              func(ctx context.Context, match *cricket.Match) error
	UpdateMatchFunc              func(ctx context.Context, match *cricket.Match) error
	DeleteMatchFunc              func(ctx context.Context, matchID string) error
	GetMatchFunc                 func(ctx context.Context, matchID string) (*cricket.Match, error)
	GetAllMatchesFunc            func(ctx context.Context) ([]cricket.Match, error)
	FindMatchesFunc              func(ctx context.Context, matchType cricket.MatchType) ([]cricket.Match, error)
	CountMatchesFunc             func(ctx context.Context, matchType cricket.MatchType) (int, error)
	CreatePlayerFunc             func(ctx context.Context, player *cricket.Player) error
	UpdatePlayerFunc             func(ctx context.Context, player *cricket.Player) error
	GetPlayerFunc                func(ctx context.Context, playerID string) (*cricket.Player, error)
	GetPlayerByNameFunc          func(ctx context.Context, name string) (*cricket.Player, error)
	GetAllPlayersFunc            func(ctx context.Context) ([]cricket.Player, error)
	GetPlayersFunc               func(ctx context.Context, playerIDs []string) ([]cricket.Player, error)
	UpsertBattingPerformanceFunc func(ctx context.Context, perf *cricket.BattingPerformance) error
	UpsertBowlingPerformanceFunc func(ctx context.Context, perf *cricket.BowlingPerformance) error
	GetBattingPerformanceFunc    func(ctx context.Context, matchID, playerID string) (*cricket.BattingPerformance, error)
	GetBowlingPerformanceFunc    func(ctx context.Context, matchID, playerID string) (*cricket.BowlingPerformance, error)
	FindBattingPerformancesFunc  func(ctx context.Context, filter cricket.PerformanceFilter) ([]cricket.BattingPerformance, error)
	FindBowlingPerformancesFunc  func(ctx context.Context, filter cricket.PerformanceFilter) ([]cricket.BowlingPerformance, error)

	// Call records
	CreateMatchCalls              []cricket.Match
	UpdateMatchCalls              []cricket.Match
	DeleteMatchCalls              []string
	CreatePlayerCalls             []cricket.Player
	UpdatePlayerCalls             []cricket.Player
	GetPlayersCalls               [][]string
	UpsertBattingPerformanceCalls []cricket.BattingPerformance
	UpsertBowlingPerformanceCalls []cricket.BowlingPerformance
	FindBattingPerformancesCalls  []cricket.PerformanceFilter
	FindBowlingPerformancesCalls  []cricket.PerformanceFilter
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateMatchCalls = nil
	m.UpdateMatchCalls = nil
	m.DeleteMatchCalls = nil
	m.CreatePlayerCalls = nil
	m.UpdatePlayerCalls = nil
	m.GetPlayersCalls = nil
	m.UpsertBattingPerformanceCalls = nil
	m.UpsertBowlingPerformanceCalls = nil
	m.FindBattingPerformancesCalls = nil
	m.FindBowlingPerformancesCalls = nil
}

func (m *MockStore) CreateMatch(ctx context.Context, match *cricket.Match) error {
	m.mu.Lock()
	m.CreateMatchCalls = append(m.CreateMatchCalls, *match)
	m.mu.Unlock()
	if m.CreateMatchFunc != nil {
		return m.CreateMatchFunc(ctx, match)
	}
	return nil
}

func (m *MockStore) UpdateMatch(ctx context.Context, match *cricket.Match) error {
	m.mu.Lock()
	m.UpdateMatchCalls = append(m.UpdateMatchCalls, *match)
	m.mu.Unlock()
	if m.UpdateMatchFunc != nil {
		return m.UpdateMatchFunc(ctx, match)
	}
	return nil
}

func (m *MockStore) DeleteMatch(ctx context.Context, matchID string) error {
	m.mu.Lock()
	m.DeleteMatchCalls = append(m.DeleteMatchCalls, matchID)
	m.mu.Unlock()
	if m.DeleteMatchFunc != nil {
		return m.DeleteMatchFunc(ctx, matchID)
	}
	return nil
}

func (m *MockStore) GetMatch(ctx context.Context, matchID string) (*cricket.Match, error) {
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(ctx, matchID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetAllMatches(ctx context.Context) ([]cricket.Match, error) {
	if m.GetAllMatchesFunc != nil {
		return m.GetAllMatchesFunc(ctx)
	}
	return []cricket.Match{}, nil
}

func (m *MockStore) FindMatches(ctx context.Context, matchType cricket.MatchType) ([]cricket.Match, error) {
	if m.FindMatchesFunc != nil {
		return m.FindMatchesFunc(ctx, matchType)
	}
	return []cricket.Match{}, nil
}

func (m *MockStore) CountMatches(ctx context.Context, matchType cricket.MatchType) (int, error) {
	if m.CountMatchesFunc != nil {
		return m.CountMatchesFunc(ctx, matchType)
	}
	return 0, nil
}

func (m *MockStore) CreatePlayer(ctx context.Context, player *cricket.Player) error {
	m.mu.Lock()
	m.CreatePlayerCalls = append(m.CreatePlayerCalls, *player)
	m.mu.Unlock()
	if m.CreatePlayerFunc != nil {
		return m.CreatePlayerFunc(ctx, player)
	}
	return nil
}

func (m *MockStore) UpdatePlayer(ctx context.Context, player *cricket.Player) error {
	m.mu.Lock()
	m.UpdatePlayerCalls = append(m.UpdatePlayerCalls, *player)
	m.mu.Unlock()
	if m.UpdatePlayerFunc != nil {
		return m.UpdatePlayerFunc(ctx, player)
	}
	return nil
}

func (m *MockStore) GetPlayer(ctx context.Context, playerID string) (*cricket.Player, error) {
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(ctx, playerID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetPlayerByName(ctx context.Context, name string) (*cricket.Player, error) {
	if m.GetPlayerByNameFunc != nil {
		return m.GetPlayerByNameFunc(ctx, name)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetAllPlayers(ctx context.Context) ([]cricket.Player, error) {
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc(ctx)
	}
	return []cricket.Player{}, nil
}

func (m *MockStore) GetPlayers(ctx context.Context, playerIDs []string) ([]cricket.Player, error) {
	m.mu.Lock()
	m.GetPlayersCalls = append(m.GetPlayersCalls, playerIDs)
	m.mu.Unlock()
	if m.GetPlayersFunc != nil {
		return m.GetPlayersFunc(ctx, playerIDs)
	}
	return []cricket.Player{}, nil
}

func (m *MockStore) UpsertBattingPerformance(ctx context.Context, perf *cricket.BattingPerformance) error {
	m.mu.Lock()
	m.UpsertBattingPerformanceCalls = append(m.UpsertBattingPerformanceCalls, *perf)
	m.mu.Unlock()
	if m.UpsertBattingPerformanceFunc != nil {
		return m.UpsertBattingPerformanceFunc(ctx, perf)
	}
	return nil
}

func (m *MockStore) UpsertBowlingPerformance(ctx context.Context, perf *cricket.BowlingPerformance) error {
	m.mu.Lock()
	m.UpsertBowlingPerformanceCalls = append(m.UpsertBowlingPerformanceCalls, *perf)
	m.mu.Unlock()
	if m.UpsertBowlingPerformanceFunc != nil {
		return m.UpsertBowlingPerformanceFunc(ctx, perf)
	}
	return nil
}

func (m *MockStore) GetBattingPerformance(ctx context.Context, matchID, playerID string) (*cricket.BattingPerformance, error) {
	if m.GetBattingPerformanceFunc != nil {
		return m.GetBattingPerformanceFunc(ctx, matchID, playerID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetBowlingPerformance(ctx context.Context, matchID, playerID string) (*cricket.BowlingPerformance, error) {
	if m.GetBowlingPerformanceFunc != nil {
		return m.GetBowlingPerformanceFunc(ctx, matchID, playerID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) FindBattingPerformances(ctx context.Context, filter cricket.PerformanceFilter) ([]cricket.BattingPerformance, error) {
	m.mu.Lock()
	m.FindBattingPerformancesCalls = append(m.FindBattingPerformancesCalls, filter)
	m.mu.Unlock()
	if m.FindBattingPerformancesFunc != nil {
		return m.FindBattingPerformancesFunc(ctx, filter)
	}
	return []cricket.BattingPerformance{}, nil
}

func (m *MockStore) FindBowlingPerformances(ctx context.Context, filter cricket.PerformanceFilter) ([]cricket.BowlingPerformance, error) {
	m.mu.Lock()
	m.FindBowlingPerformancesCalls = append(m.FindBowlingPerformancesCalls, filter)
	m.mu.Unlock()
	if m.FindBowlingPerformancesFunc != nil {
		return m.FindBowlingPerformancesFunc(ctx, filter)
	}
	return []cricket.BowlingPerformance{}, nil
}
