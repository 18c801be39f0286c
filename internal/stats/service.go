package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cricket-stats/internal/cricket"
	"github.com/mauv0809/cricket-stats/internal/metrics"
	"golang.org/x/sync/errgroup"
)

var _ Reporter = (*Service)(nil)

// Service computes statistics views from the record store. It keeps no state
// between calls.
type Service struct {
	store   Store
	metrics metrics.Metrics
}

// NewService creates a new statistics Service.
func NewService(store Store, metrics metrics.Metrics) *Service {
	return &Service{
		store:   store,
		metrics: metrics,
	}
}

func (s *Service) observe(view string, start time.Time) {
	s.metrics.IncStatsRequests(view)
	s.metrics.ObserveAggregationDuration(view, time.Since(start).Seconds())
}

// matches resolves the matches of a format.
func (s *Service) matches(ctx context.Context, matchType cricket.MatchType) ([]cricket.Match, error) {
	all, err := s.store.GetAllMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches: %w", err)
	}
	return FilterMatches(all, matchType), nil
}

// performances fetches batting and bowling records for the filter concurrently.
func (s *Service) performances(ctx context.Context, filter cricket.PerformanceFilter) ([]cricket.BattingPerformance, []cricket.BowlingPerformance, error) {
	var batting []cricket.BattingPerformance
	var bowling []cricket.BowlingPerformance

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		batting, err = s.store.FindBattingPerformances(gctx, filter)
		if err != nil {
			return fmt.Errorf("failed to fetch batting performances: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		bowling, err = s.store.FindBowlingPerformances(gctx, filter)
		if err != nil {
			return fmt.Errorf("failed to fetch bowling performances: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return batting, bowling, nil
}

// players resolves the distinct players referenced by ids.
func (s *Service) players(ctx context.Context, ids []string) (map[string]cricket.Player, error) {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return map[string]cricket.Player{}, nil
	}
	players, err := s.store.GetPlayers(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch players: %w", err)
	}
	return indexPlayers(players), nil
}

func (s *Service) BattingStats(ctx context.Context, matchType cricket.MatchType) (BattingStats, error) {
	defer s.observe("batting", time.Now())
	matches, err := s.matches(ctx, matchType)
	if err != nil {
		return BattingStats{}, err
	}
	perfs, err := s.store.FindBattingPerformances(ctx, cricket.PerformanceFilter{MatchIDs: MatchIDs(matches)})
	if err != nil {
		return BattingStats{}, fmt.Errorf("failed to fetch batting performances: %w", err)
	}
	log.Debug("Aggregating team batting", "match_type", matchType, "matches", len(matches), "innings", len(perfs))
	return AggregateBatting(perfs), nil
}

func (s *Service) BowlingStats(ctx context.Context, matchType cricket.MatchType) (BowlingStats, error) {
	defer s.observe("bowling", time.Now())
	matches, err := s.matches(ctx, matchType)
	if err != nil {
		return BowlingStats{}, err
	}
	perfs, err := s.store.FindBowlingPerformances(ctx, cricket.PerformanceFilter{MatchIDs: MatchIDs(matches)})
	if err != nil {
		return BowlingStats{}, fmt.Errorf("failed to fetch bowling performances: %w", err)
	}
	log.Debug("Aggregating team bowling", "match_type", matchType, "matches", len(matches), "spells", len(perfs))
	return AggregateBowling(perfs, len(matches)), nil
}

func (s *Service) PlayerBattingStats(ctx context.Context, matchType cricket.MatchType) ([]PlayerBattingRow, error) {
	defer s.observe("player_batting", time.Now())
	matches, err := s.matches(ctx, matchType)
	if err != nil {
		return nil, err
	}
	perfs, err := s.store.FindBattingPerformances(ctx, cricket.PerformanceFilter{MatchIDs: MatchIDs(matches)})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch batting performances: %w", err)
	}
	ids := make([]string, 0, len(perfs))
	for _, p := range perfs {
		ids = append(ids, p.PlayerID)
	}
	players, err := s.players(ctx, ids)
	if err != nil {
		return nil, err
	}
	return AggregatePlayerBatting(perfs, players), nil
}

func (s *Service) PlayerBowlingStats(ctx context.Context, matchType cricket.MatchType) ([]PlayerBowlingRow, error) {
	defer s.observe("player_bowling", time.Now())
	matches, err := s.matches(ctx, matchType)
	if err != nil {
		return nil, err
	}
	perfs, err := s.store.FindBowlingPerformances(ctx, cricket.PerformanceFilter{MatchIDs: MatchIDs(matches)})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bowling performances: %w", err)
	}
	ids := make([]string, 0, len(perfs))
	for _, p := range perfs {
		ids = append(ids, p.PlayerID)
	}
	players, err := s.players(ctx, ids)
	if err != nil {
		return nil, err
	}
	return AggregatePlayerBowling(perfs, players), nil
}

// Breakdown fetches every match and performance once and splits them by format.
func (s *Service) Breakdown(ctx context.Context) (Breakdown, error) {
	defer s.observe("breakdown", time.Now())
	matches, err := s.matches(ctx, cricket.MatchTypeAll)
	if err != nil {
		return nil, err
	}
	batting, bowling, err := s.performances(ctx, cricket.PerformanceFilter{MatchIDs: MatchIDs(matches)})
	if err != nil {
		return nil, err
	}
	return ComposeBreakdown(matches, batting, bowling), nil
}

// PlayerDetail reports one player's batting and bowling for a format along
// with their most recent performances. An unknown player yields zero stats.
func (s *Service) PlayerDetail(ctx context.Context, playerID string, matchType cricket.MatchType) (*PlayerDetail, error) {
	defer s.observe("player_detail", time.Now())
	matches, err := s.matches(ctx, matchType)
	if err != nil {
		return nil, err
	}
	batting, bowling, err := s.performances(ctx, cricket.PerformanceFilter{
		MatchIDs: MatchIDs(matches),
		PlayerID: playerID,
	})
	if err != nil {
		return nil, err
	}

	byID := indexMatches(matches)
	bowlingStats := AggregateBowling(bowling, 0)
	// A single player's report counts the matches they bowled in.
	bowlingStats.TotalMatches = len(bowling)
	return &PlayerDetail{
		Batting:       AggregateBatting(batting),
		Bowling:       bowlingStats,
		RecentBatting: RecentBattingFor(batting, byID, RecentLimit),
		RecentBowling: RecentBowlingFor(bowling, byID, RecentLimit),
	}, nil
}

// Summary collects the team totals and the top performers of a format.
func (s *Service) Summary(ctx context.Context, matchType cricket.MatchType, top int) (*Summary, error) {
	defer s.observe("summary", time.Now())
	matchType = cricket.ParseMatchType(string(matchType))
	matches, err := s.matches(ctx, matchType)
	if err != nil {
		return nil, err
	}
	batting, bowling, err := s.performances(ctx, cricket.PerformanceFilter{MatchIDs: MatchIDs(matches)})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(batting)+len(bowling))
	for _, p := range batting {
		ids = append(ids, p.PlayerID)
	}
	for _, p := range bowling {
		ids = append(ids, p.PlayerID)
	}
	players, err := s.players(ctx, ids)
	if err != nil {
		return nil, err
	}

	batters := AggregatePlayerBatting(batting, players)
	bowlers := AggregatePlayerBowling(bowling, players)
	if top > 0 && len(batters) > top {
		batters = batters[:top]
	}
	if top > 0 && len(bowlers) > top {
		bowlers = bowlers[:top]
	}
	return &Summary{
		MatchType:  matchType,
		MatchCount: len(matches),
		Batting:    AggregateBatting(batting),
		Bowling:    AggregateBowling(bowling, len(matches)),
		TopBatters: batters,
		TopBowlers: bowlers,
	}, nil
}
