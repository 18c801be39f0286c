package club

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/cricket-stats/internal/cricket"
)

const (
	battingColumns = `id, match_id, player_id, runs, balls, fours, sixes, is_out, created_at, updated_at`
	bowlingColumns = `id, match_id, player_id, balls, runs, wickets, wides, no_balls, created_at, updated_at`
)

// UpsertBattingPerformance saves a player's innings for a match. A second save
// for the same match and player overwrites the counters of the first; the
// row keeps its original id and creation time.
func (s *store) UpsertBattingPerformance(ctx context.Context, perf *cricket.BattingPerformance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Truncate(time.Second)
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO batting_performances (`+battingColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(match_id, player_id) DO UPDATE SET
			runs = excluded.runs,
			balls = excluded.balls,
			fours = excluded.fours,
			sixes = excluded.sixes,
			is_out = excluded.is_out,
			updated_at = excluded.updated_at
		RETURNING id, created_at`,
		uuid.NewString(), perf.MatchID, perf.PlayerID, perf.Runs, perf.Balls, perf.Fours, perf.Sixes, perf.Out, now.Unix(), now.Unix())

	var createdAt int64
	if err := row.Scan(&perf.ID, &createdAt); err != nil {
		return fmt.Errorf("failed to upsert batting for match %s player %s: %w", perf.MatchID, perf.PlayerID, err)
	}
	perf.CreatedAt = time.Unix(createdAt, 0).UTC()
	perf.UpdatedAt = now
	log.Debug("Saved batting performance", "id", perf.ID, "match_id", perf.MatchID, "player_id", perf.PlayerID, "runs", perf.Runs)
	return nil
}

// UpsertBowlingPerformance saves a player's spell for a match, replacing any
// earlier spell for the same match and player.
func (s *store) UpsertBowlingPerformance(ctx context.Context, perf *cricket.BowlingPerformance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Truncate(time.Second)
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO bowling_performances (`+bowlingColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(match_id, player_id) DO UPDATE SET
			balls = excluded.balls,
			runs = excluded.runs,
			wickets = excluded.wickets,
			wides = excluded.wides,
			no_balls = excluded.no_balls,
			updated_at = excluded.updated_at
		RETURNING id, created_at`,
		uuid.NewString(), perf.MatchID, perf.PlayerID, perf.Balls, perf.Runs, perf.Wickets, perf.Wides, perf.NoBalls, now.Unix(), now.Unix())

	var createdAt int64
	if err := row.Scan(&perf.ID, &createdAt); err != nil {
		return fmt.Errorf("failed to upsert bowling for match %s player %s: %w", perf.MatchID, perf.PlayerID, err)
	}
	perf.CreatedAt = time.Unix(createdAt, 0).UTC()
	perf.UpdatedAt = now
	log.Debug("Saved bowling performance", "id", perf.ID, "match_id", perf.MatchID, "player_id", perf.PlayerID, "wickets", perf.Wickets)
	return nil
}

func (s *store) GetBattingPerformance(ctx context.Context, matchID, playerID string) (*cricket.BattingPerformance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, "SELECT "+battingColumns+" FROM batting_performances WHERE match_id = ? AND player_id = ?", matchID, playerID)
	perf, err := scanBatting(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get batting for match %s player %s: %w", matchID, playerID, err)
	}
	return &perf, nil
}

func (s *store) GetBowlingPerformance(ctx context.Context, matchID, playerID string) (*cricket.BowlingPerformance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, "SELECT "+bowlingColumns+" FROM bowling_performances WHERE match_id = ? AND player_id = ?", matchID, playerID)
	perf, err := scanBowling(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bowling for match %s player %s: %w", matchID, playerID, err)
	}
	return &perf, nil
}

// FindBattingPerformances returns the innings played in the filter's matches.
func (s *store) FindBattingPerformances(ctx context.Context, filter cricket.PerformanceFilter) ([]cricket.BattingPerformance, error) {
	perfs := make([]cricket.BattingPerformance, 0)
	if len(filter.MatchIDs) == 0 {
		return perfs, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	query, args := performanceQuery("SELECT "+battingColumns+" FROM batting_performances", filter)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query batting performances: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		perf, err := scanBatting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan batting row: %w", err)
		}
		perfs = append(perfs, perf)
	}
	return perfs, rows.Err()
}

// FindBowlingPerformances returns the spells bowled in the filter's matches.
func (s *store) FindBowlingPerformances(ctx context.Context, filter cricket.PerformanceFilter) ([]cricket.BowlingPerformance, error) {
	perfs := make([]cricket.BowlingPerformance, 0)
	if len(filter.MatchIDs) == 0 {
		return perfs, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	query, args := performanceQuery("SELECT "+bowlingColumns+" FROM bowling_performances", filter)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bowling performances: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		perf, err := scanBowling(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bowling row: %w", err)
		}
		perfs = append(perfs, perf)
	}
	return perfs, rows.Err()
}

func performanceQuery(base string, filter cricket.PerformanceFilter) (string, []any) {
	marks, args := placeholders(filter.MatchIDs)
	query := base + " WHERE match_id IN (" + marks + ")"
	if filter.PlayerID != "" {
		query += " AND player_id = ?"
		args = append(args, filter.PlayerID)
	}
	return query + " ORDER BY rowid", args
}

func scanBatting(row scanner) (cricket.BattingPerformance, error) {
	var p cricket.BattingPerformance
	var createdAt, updatedAt int64
	err := row.Scan(&p.ID, &p.MatchID, &p.PlayerID, &p.Runs, &p.Balls, &p.Fours, &p.Sixes, &p.Out, &createdAt, &updatedAt)
	if err != nil {
		return cricket.BattingPerformance{}, err
	}
	p.CreatedAt = time.Unix(createdAt, 0).UTC()
	p.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return p, nil
}

func scanBowling(row scanner) (cricket.BowlingPerformance, error) {
	var p cricket.BowlingPerformance
	var createdAt, updatedAt int64
	err := row.Scan(&p.ID, &p.MatchID, &p.PlayerID, &p.Balls, &p.Runs, &p.Wickets, &p.Wides, &p.NoBalls, &createdAt, &updatedAt)
	if err != nil {
		return cricket.BowlingPerformance{}, err
	}
	p.CreatedAt = time.Unix(createdAt, 0).UTC()
	p.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return p, nil
}
