package club

import (
	"context"

	"github.com/mauv0809/cricket-stats/internal/cricket"
)

// ClubStore defines the interface for interacting with the club's data.
type ClubStore interface {
	CreateMatch(ctx context.Context, match *cricket.Match) error
	UpdateMatch(ctx context.Context, match *cricket.Match) error
	DeleteMatch(ctx context.Context, matchID string) error
	GetMatch(ctx context.Context, matchID string) (*cricket.Match, error)
	GetAllMatches(ctx context.Context) ([]cricket.Match, error)
	FindMatches(ctx context.Context, matchType cricket.MatchType) ([]cricket.Match, error)
	CountMatches(ctx context.Context, matchType cricket.MatchType) (int, error)

	CreatePlayer(ctx context.Context, player *cricket.Player) error
	UpdatePlayer(ctx context.Context, player *cricket.Player) error
	GetPlayer(ctx context.Context, playerID string) (*cricket.Player, error)
	GetPlayerByName(ctx context.Context, name string) (*cricket.Player, error)
	GetAllPlayers(ctx context.Context) ([]cricket.Player, error)
	GetPlayers(ctx context.Context, playerIDs []string) ([]cricket.Player, error)

	UpsertBattingPerformance(ctx context.Context, perf *cricket.BattingPerformance) error
	UpsertBowlingPerformance(ctx context.Context, perf *cricket.BowlingPerformance) error
	GetBattingPerformance(ctx context.Context, matchID, playerID string) (*cricket.BattingPerformance, error)
	GetBowlingPerformance(ctx context.Context, matchID, playerID string) (*cricket.BowlingPerformance, error)
	FindBattingPerformances(ctx context.Context, filter cricket.PerformanceFilter) ([]cricket.BattingPerformance, error)
	FindBowlingPerformances(ctx context.Context, filter cricket.PerformanceFilter) ([]cricket.BowlingPerformance, error)
}
