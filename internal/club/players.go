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

const playerColumns = `id, full_name, short_name, batting_style, bowling_style, role, is_active, created_at, updated_at`

// CreatePlayer stores a new player. New players are active.
func (s *store) CreatePlayer(ctx context.Context, player *cricket.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if player.ID == "" {
		player.ID = uuid.NewString()
	}
	now := time.Now().UTC().Truncate(time.Second)
	player.CreatedAt, player.UpdatedAt = now, now
	player.IsActive = true

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO players (`+playerColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		player.ID, player.FullName, player.ShortName, nullableStyle(player.BattingStyle), player.BowlingStyle,
		player.Role, player.IsActive, now.Unix(), now.Unix())
	if err != nil {
		return fmt.Errorf("failed to insert player %s: %w", player.ID, err)
	}
	log.Debug("Created player", "player_id", player.ID, "name", player.FullName)
	return nil
}

// UpdatePlayer writes every field of an existing player.
func (s *store) UpdatePlayer(ctx context.Context, player *cricket.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Truncate(time.Second)
	row := s.db.QueryRowContext(ctx, `
		UPDATE players
		SET full_name = ?, short_name = ?, batting_style = ?, bowling_style = ?, role = ?, is_active = ?, updated_at = ?
		WHERE id = ?
		RETURNING created_at`,
		player.FullName, player.ShortName, nullableStyle(player.BattingStyle), player.BowlingStyle,
		player.Role, player.IsActive, now.Unix(), player.ID)
	var createdAt int64
	if err := row.Scan(&createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update player %s: %w", player.ID, err)
	}
	player.CreatedAt = time.Unix(createdAt, 0).UTC()
	player.UpdatedAt = now
	return nil
}

func (s *store) GetPlayer(ctx context.Context, playerID string) (*cricket.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, "SELECT "+playerColumns+" FROM players WHERE id = ?", playerID)
	player, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get player %s: %w", playerID, err)
	}
	return &player, nil
}

// GetPlayerByName finds a player by full or short name, ignoring case.
func (s *store) GetPlayerByName(ctx context.Context, name string) (*cricket.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT `+playerColumns+` FROM players
		WHERE lower(full_name) = lower(?) OR lower(short_name) = lower(?)
		ORDER BY is_active DESC, full_name
		LIMIT 1`, name, name)
	player, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find player %q: %w", name, err)
	}
	return &player, nil
}

// GetAllPlayers returns every player ordered by full name.
func (s *store) GetAllPlayers(ctx context.Context) ([]cricket.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryPlayers(ctx, "SELECT "+playerColumns+" FROM players ORDER BY full_name")
}

// GetPlayers returns the players with the given ids. Unknown ids are skipped.
func (s *store) GetPlayers(ctx context.Context, playerIDs []string) ([]cricket.Player, error) {
	if len(playerIDs) == 0 {
		return []cricket.Player{}, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	marks, args := placeholders(playerIDs)
	return s.queryPlayers(ctx, "SELECT "+playerColumns+" FROM players WHERE id IN ("+marks+") ORDER BY full_name", args...)
}

func (s *store) queryPlayers(ctx context.Context, query string, args ...any) ([]cricket.Player, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players := make([]cricket.Player, 0)
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", err)
		}
		players = append(players, player)
	}
	return players, rows.Err()
}

func scanPlayer(row scanner) (cricket.Player, error) {
	var p cricket.Player
	var battingStyle, bowlingStyle sql.NullString
	var createdAt, updatedAt int64
	err := row.Scan(&p.ID, &p.FullName, &p.ShortName, &battingStyle, &bowlingStyle, &p.Role, &p.IsActive, &createdAt, &updatedAt)
	if err != nil {
		return cricket.Player{}, err
	}
	p.BattingStyle = cricket.BattingStyle(battingStyle.String)
	if bowlingStyle.Valid {
		p.BowlingStyle = &bowlingStyle.String
	}
	p.CreatedAt = time.Unix(createdAt, 0).UTC()
	p.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return p, nil
}

func nullableStyle(style cricket.BattingStyle) sql.NullString {
	return sql.NullString{String: string(style), Valid: style != ""}
}
