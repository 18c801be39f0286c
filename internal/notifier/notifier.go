package notifier

import (
	"github.com/mauv0809/cricket-stats/internal/cricket"
	"github.com/mauv0809/cricket-stats/internal/stats"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For recorded performances
	SendMilestone(milestone stats.Milestone, dryRun bool) error
	// For the scheduled digest
	SendSummary(summary *stats.Summary, dryRun bool) error

	// For formatting responses for slash commands
	FormatLeaderboardResponse(matchType cricket.MatchType, batters []stats.PlayerBattingRow, bowlers []stats.PlayerBowlingRow) (any, error)
	FormatPlayerStatsResponse(player *cricket.Player, matchType cricket.MatchType, detail *stats.PlayerDetail) (any, error)
	FormatPlayerNotFoundResponse(query string, suggestions []string) (any, error)
}
