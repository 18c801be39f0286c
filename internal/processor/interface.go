package processor

import (
	"context"

	"github.com/mauv0809/cricket-stats/internal/cricket"
	"github.com/mauv0809/cricket-stats/internal/notifier"
)

// Store defines the database operations required by the processor.
type Store interface {
	GetMatch(ctx context.Context, matchID string) (*cricket.Match, error)
	GetPlayer(ctx context.Context, playerID string) (*cricket.Player, error)
	GetBattingPerformance(ctx context.Context, matchID, playerID string) (*cricket.BattingPerformance, error)
	GetBowlingPerformance(ctx context.Context, matchID, playerID string) (*cricket.BowlingPerformance, error)
}

// Notifier is an alias for the main notifier interface for decoupling.
type Notifier interface {
	notifier.Notifier
}
