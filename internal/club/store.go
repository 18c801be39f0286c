package club

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/cricket-stats/internal/cricket"
)

var _ ClubStore = (*store)(nil)

// New creates a new ClubStore.
func New(db *sql.DB) ClubStore {
	return &store{
		db: db,
	}
}

const matchColumns = `id, date, opponent, venue, overs, match_type, created_at, updated_at`

// CreateMatch stores a new match. An ID is generated when none is set.
func (s *store) CreateMatch(ctx context.Context, match *cricket.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if match.ID == "" {
		match.ID = uuid.NewString()
	}
	now := time.Now().UTC().Truncate(time.Second)
	match.CreatedAt, match.UpdatedAt = now, now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO matches (`+matchColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		match.ID, match.Date.Unix(), match.Opponent, match.Venue, match.Overs, match.MatchType, now.Unix(), now.Unix())
	if err != nil {
		return fmt.Errorf("failed to insert match %s: %w", match.ID, err)
	}
	log.Debug("Created match", "match_id", match.ID, "opponent", match.Opponent)
	return nil
}

// UpdateMatch replaces every editable field of an existing match.
func (s *store) UpdateMatch(ctx context.Context, match *cricket.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Truncate(time.Second)
	row := s.db.QueryRowContext(ctx, `
		UPDATE matches
		SET date = ?, opponent = ?, venue = ?, overs = ?, match_type = ?, updated_at = ?
		WHERE id = ?
		RETURNING created_at`,
		match.Date.Unix(), match.Opponent, match.Venue, match.Overs, match.MatchType, now.Unix(), match.ID)
	var createdAt int64
	if err := row.Scan(&createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update match %s: %w", match.ID, err)
	}
	match.CreatedAt = time.Unix(createdAt, 0).UTC()
	match.UpdatedAt = now
	return nil
}

// DeleteMatch removes a match. Its performances are kept and drop out of
// every aggregate because their match no longer resolves.
func (s *store) DeleteMatch(ctx context.Context, matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM matches WHERE id = ?", matchID)
	if err != nil {
		return fmt.Errorf("failed to delete match %s: %w", matchID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete match %s: %w", matchID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	log.Debug("Deleted match", "match_id", matchID)
	return nil
}

func (s *store) GetMatch(ctx context.Context, matchID string) (*cricket.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, "SELECT "+matchColumns+" FROM matches WHERE id = ?", matchID)
	match, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get match %s: %w", matchID, err)
	}
	return &match, nil
}

// GetAllMatches returns every match, newest first.
func (s *store) GetAllMatches(ctx context.Context) ([]cricket.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryMatches(ctx, "SELECT "+matchColumns+" FROM matches ORDER BY date DESC, id")
}

// FindMatches returns the matches of a format, newest first. MatchTypeAll and
// unknown formats return every match.
func (s *store) FindMatches(ctx context.Context, matchType cricket.MatchType) ([]cricket.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matchType = cricket.ParseMatchType(string(matchType))
	if matchType == cricket.MatchTypeAll {
		return s.queryMatches(ctx, "SELECT "+matchColumns+" FROM matches ORDER BY date DESC, id")
	}
	return s.queryMatches(ctx, "SELECT "+matchColumns+" FROM matches WHERE match_type = ? ORDER BY date DESC, id", matchType)
}

func (s *store) CountMatches(ctx context.Context, matchType cricket.MatchType) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	var err error
	matchType = cricket.ParseMatchType(string(matchType))
	if matchType == cricket.MatchTypeAll {
		err = s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM matches").Scan(&count)
	} else {
		err = s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM matches WHERE match_type = ?", matchType).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return count, nil
}

func (s *store) queryMatches(ctx context.Context, query string, args ...any) ([]cricket.Match, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := make([]cricket.Match, 0)
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}
		matches = append(matches, match)
	}
	return matches, rows.Err()
}

func scanMatch(row scanner) (cricket.Match, error) {
	var m cricket.Match
	var date, createdAt, updatedAt int64
	if err := row.Scan(&m.ID, &date, &m.Opponent, &m.Venue, &m.Overs, &m.MatchType, &createdAt, &updatedAt); err != nil {
		return cricket.Match{}, err
	}
	m.Date = time.Unix(date, 0).UTC()
	m.CreatedAt = time.Unix(createdAt, 0).UTC()
	m.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return m, nil
}

// placeholders returns "?, ?, ?" with n markers and the values as query args.
func placeholders(values []string) (string, []any) {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", "), args
}
