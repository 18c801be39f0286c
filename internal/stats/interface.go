package stats

import (
	"context"

	"github.com/mauv0809/cricket-stats/internal/cricket"
)

// Reporter produces the statistics views served to the dashboard and to chat.
type Reporter interface {
	BattingStats(ctx context.Context, matchType cricket.MatchType) (BattingStats, error)
	BowlingStats(ctx context.Context, matchType cricket.MatchType) (BowlingStats, error)
	PlayerBattingStats(ctx context.Context, matchType cricket.MatchType) ([]PlayerBattingRow, error)
	PlayerBowlingStats(ctx context.Context, matchType cricket.MatchType) ([]PlayerBowlingRow, error)
	Breakdown(ctx context.Context) (Breakdown, error)
	PlayerDetail(ctx context.Context, playerID string, matchType cricket.MatchType) (*PlayerDetail, error)
	Summary(ctx context.Context, matchType cricket.MatchType, top int) (*Summary, error)
}

// Store is the read side of the record store the service aggregates over.
type Store interface {
	GetAllMatches(ctx context.Context) ([]cricket.Match, error)
	FindBattingPerformances(ctx context.Context, filter cricket.PerformanceFilter) ([]cricket.BattingPerformance, error)
	FindBowlingPerformances(ctx context.Context, filter cricket.PerformanceFilter) ([]cricket.BowlingPerformance, error)
	GetPlayers(ctx context.Context, playerIDs []string) ([]cricket.Player, error)
}
