package cricket

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is wrapped by every validation failure in this package.
var ErrValidation = errors.New("validation failed")

// ParseMatchType maps a raw format value onto the enumeration. Anything that
// is not a recognized format, including the empty string, widens to MatchTypeAll.
func ParseMatchType(s string) MatchType {
	mt := MatchType(s)
	if mt.IsValid() {
		return mt
	}
	return MatchTypeAll
}

// IsValid reports whether m is one of the stored formats. MatchTypeAll is not.
func (m MatchType) IsValid() bool {
	for _, known := range MatchTypes {
		if m == known {
			return true
		}
	}
	return false
}

func (v Venue) IsValid() bool {
	return v == VenueHome || v == VenueAway
}

func (r Role) IsValid() bool {
	switch r {
	case RoleBatsman, RoleBowler, RoleAllRounder, RoleWicketKeeper:
		return true
	}
	return false
}

func (b BattingStyle) IsValid() bool {
	return b == BattingStyleRightHand || b == BattingStyleLeftHand
}

// Validate checks the invariants of a match before it is stored.
func (m *Match) Validate() error {
	if m.Date.IsZero() || strings.TrimSpace(m.Opponent) == "" || m.Venue == "" || m.MatchType == "" {
		return fmt.Errorf("%w: missing required fields", ErrValidation)
	}
	if m.Overs <= 0 {
		return fmt.Errorf("%w: overs must be a positive number", ErrValidation)
	}
	if !m.Venue.IsValid() {
		return fmt.Errorf("%w: unknown venue %q", ErrValidation, m.Venue)
	}
	if !m.MatchType.IsValid() {
		return fmt.Errorf("%w: unknown match type %q", ErrValidation, m.MatchType)
	}
	return nil
}

// Validate checks the invariants of a player before it is stored.
func (p *Player) Validate() error {
	if strings.TrimSpace(p.FullName) == "" || strings.TrimSpace(p.ShortName) == "" || p.Role == "" {
		return fmt.Errorf("%w: missing required fields", ErrValidation)
	}
	if !p.Role.IsValid() {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, p.Role)
	}
	if p.BattingStyle != "" && !p.BattingStyle.IsValid() {
		return fmt.Errorf("%w: unknown batting style %q", ErrValidation, p.BattingStyle)
	}
	return nil
}

func (b *BattingPerformance) Validate() error {
	if b.MatchID == "" || b.PlayerID == "" {
		return fmt.Errorf("%w: missing matchId or playerId", ErrValidation)
	}
	if b.Runs < 0 || b.Balls < 0 || b.Fours < 0 || b.Sixes < 0 {
		return fmt.Errorf("%w: batting counters must not be negative", ErrValidation)
	}
	return nil
}

func (b *BowlingPerformance) Validate() error {
	if b.MatchID == "" || b.PlayerID == "" {
		return fmt.Errorf("%w: missing matchId or playerId", ErrValidation)
	}
	if b.Balls < 0 || b.Runs < 0 || b.Wickets < 0 || b.Wides < 0 || b.NoBalls < 0 {
		return fmt.Errorf("%w: bowling counters must not be negative", ErrValidation)
	}
	return nil
}
