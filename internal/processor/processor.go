package processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cricket-stats/internal/club"
	"github.com/mauv0809/cricket-stats/internal/cricket"
	"github.com/mauv0809/cricket-stats/internal/metrics"
	"github.com/mauv0809/cricket-stats/internal/pubsub"
	"github.com/mauv0809/cricket-stats/internal/stats"
)

// New creates a new Processor.
func New(store Store, reporter stats.Reporter, notifier Notifier, metrics metrics.Metrics, counters metrics.MetricsStore) *Processor {
	return &Processor{
		store:    store,
		reporter: reporter,
		notifier: notifier,
		metrics:  metrics,
		counters: counters,
	}
}

// HandlePerformanceRecorded announces a milestone reached by a newly recorded
// performance. Records that no longer resolve are skipped.
func (p *Processor) HandlePerformanceRecorded(ctx context.Context, evt pubsub.PerformanceRecorded, dryRun bool) error {
	defer p.counters.Increment(metrics.KeyEventsProcessed)
	logger := log.With("kind", evt.Kind, "matchID", evt.MatchID, "playerID", evt.PlayerID)
	logger.Debug("Handling recorded performance")

	player, err := p.store.GetPlayer(ctx, evt.PlayerID)
	if errors.Is(err, club.ErrNotFound) {
		logger.Warn("Player not found, skipping event")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load player: %w", err)
	}
	match, err := p.store.GetMatch(ctx, evt.MatchID)
	if errors.Is(err, club.ErrNotFound) {
		logger.Warn("Match not found, skipping event")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load match: %w", err)
	}

	milestone, found, err := p.detect(ctx, evt, player, match)
	if errors.Is(err, club.ErrNotFound) {
		logger.Warn("Performance not found, skipping event")
		return nil
	}
	if err != nil {
		return err
	}
	if !found {
		logger.Debug("No milestone reached")
		return nil
	}

	logger.Info("Milestone reached", "milestone", milestone.Kind, "figures", milestone.Figures)
	if err := p.notifier.SendMilestone(milestone, dryRun); err != nil {
		return fmt.Errorf("failed to send milestone: %w", err)
	}
	p.metrics.IncMilestones(string(milestone.Kind))
	if !dryRun {
		p.counters.Increment(metrics.MilestoneKey(string(milestone.Kind)))
	}
	return nil
}

func (p *Processor) detect(ctx context.Context, evt pubsub.PerformanceRecorded, player *cricket.Player, match *cricket.Match) (stats.Milestone, bool, error) {
	switch evt.Kind {
	case pubsub.KindBatting:
		perf, err := p.store.GetBattingPerformance(ctx, evt.MatchID, evt.PlayerID)
		if err != nil {
			return stats.Milestone{}, false, fmt.Errorf("failed to load batting performance: %w", err)
		}
		m, ok := stats.DetectBattingMilestone(*perf, *player, *match)
		return m, ok, nil
	case pubsub.KindBowling:
		perf, err := p.store.GetBowlingPerformance(ctx, evt.MatchID, evt.PlayerID)
		if err != nil {
			return stats.Milestone{}, false, fmt.Errorf("failed to load bowling performance: %w", err)
		}
		m, ok := stats.DetectBowlingMilestone(*perf, *player, *match)
		return m, ok, nil
	default:
		return stats.Milestone{}, false, fmt.Errorf("unknown performance kind %q", evt.Kind)
	}
}

// SendSummary posts the team totals and top performers of a format.
func (p *Processor) SendSummary(ctx context.Context, matchType cricket.MatchType, dryRun bool) error {
	log.Info("Sending summary", "match_type", matchType, "dry_run", dryRun)
	summary, err := p.reporter.Summary(ctx, matchType, SummaryTop)
	if err != nil {
		return fmt.Errorf("failed to build summary: %w", err)
	}
	if err := p.notifier.SendSummary(summary, dryRun); err != nil {
		return fmt.Errorf("failed to send summary: %w", err)
	}
	if !dryRun {
		p.counters.Increment(metrics.KeySummariesSent)
	}
	return nil
}
