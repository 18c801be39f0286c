package notifier

import (
	"sync"

	"github.com/mauv0809/cricket-stats/internal/cricket"
	"github.com/mauv0809/cricket-stats/internal/stats"
)

var _ Notifier = (*Mock)(nil)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for send functions
	SendMilestoneFunc func(milestone stats.Milestone, dryRun bool) error
	SendSummaryFunc   func(summary *stats.Summary, dryRun bool) error

	// Call records
	SendMilestoneCalls []stats.Milestone
	SendSummaryCalls   []*stats.Summary
	DryRuns            []bool

	// Spies for format functions
	FormatLeaderboardResponseFunc    func(matchType cricket.MatchType, batters []stats.PlayerBattingRow, bowlers []stats.PlayerBowlingRow) (any, error)
	FormatPlayerStatsResponseFunc    func(player *cricket.Player, matchType cricket.MatchType, detail *stats.PlayerDetail) (any, error)
	FormatPlayerNotFoundResponseFunc func(query string, suggestions []string) (any, error)

	// Call records for format functions
	LastLeaderboardResponse    any
	LastPlayerStatsResponse    any
	LastPlayerNotFoundResponse any
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMilestoneCalls = nil
	m.SendSummaryCalls = nil
	m.DryRuns = nil
	m.LastLeaderboardResponse = nil
	m.LastPlayerStatsResponse = nil
	m.LastPlayerNotFoundResponse = nil
}

func (m *Mock) SendMilestone(milestone stats.Milestone, dryRun bool) error {
	m.mu.Lock()
	m.SendMilestoneCalls = append(m.SendMilestoneCalls, milestone)
	m.DryRuns = append(m.DryRuns, dryRun)
	m.mu.Unlock()
	if m.SendMilestoneFunc != nil {
		return m.SendMilestoneFunc(milestone, dryRun)
	}
	return nil
}

func (m *Mock) SendSummary(summary *stats.Summary, dryRun bool) error {
	m.mu.Lock()
	m.SendSummaryCalls = append(m.SendSummaryCalls, summary)
	m.DryRuns = append(m.DryRuns, dryRun)
	m.mu.Unlock()
	if m.SendSummaryFunc != nil {
		return m.SendSummaryFunc(summary, dryRun)
	}
	return nil
}

func (m *Mock) FormatLeaderboardResponse(matchType cricket.MatchType, batters []stats.PlayerBattingRow, bowlers []stats.PlayerBowlingRow) (any, error) {
	var resp any = map[string]any{"matchType": matchType, "batters": batters, "bowlers": bowlers}
	var err error
	if m.FormatLeaderboardResponseFunc != nil {
		resp, err = m.FormatLeaderboardResponseFunc(matchType, batters, bowlers)
	}
	m.mu.Lock()
	m.LastLeaderboardResponse = resp
	m.mu.Unlock()
	return resp, err
}

func (m *Mock) FormatPlayerStatsResponse(player *cricket.Player, matchType cricket.MatchType, detail *stats.PlayerDetail) (any, error) {
	var resp any = map[string]any{"player": player, "matchType": matchType, "detail": detail}
	var err error
	if m.FormatPlayerStatsResponseFunc != nil {
		resp, err = m.FormatPlayerStatsResponseFunc(player, matchType, detail)
	}
	m.mu.Lock()
	m.LastPlayerStatsResponse = resp
	m.mu.Unlock()
	return resp, err
}

func (m *Mock) FormatPlayerNotFoundResponse(query string, suggestions []string) (any, error) {
	var resp any = map[string]any{"query": query, "suggestions": suggestions}
	var err error
	if m.FormatPlayerNotFoundResponseFunc != nil {
		resp, err = m.FormatPlayerNotFoundResponseFunc(query, suggestions)
	}
	m.mu.Lock()
	m.LastPlayerNotFoundResponse = resp
	m.mu.Unlock()
	return resp, err
}
