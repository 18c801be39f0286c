package cricket

import "time"

// MatchType is the competition format a match belongs to.
type MatchType string

const (
	// MatchTypeAll is the sentinel for "every format". It is never stored on a match.
	MatchTypeAll         MatchType = "All"
	MatchTypeHomeAndHome MatchType = "Home and Home"
	MatchTypePractice    MatchType = "Practice"
	MatchTypeDiv3        MatchType = "Div 3"
	MatchTypeInterUni    MatchType = "Inter Uni"
	MatchTypeSLUG        MatchType = "SLUG"
)

// MatchTypes lists every recognized format, in display order.
var MatchTypes = []MatchType{
	MatchTypeHomeAndHome,
	MatchTypePractice,
	MatchTypeDiv3,
	MatchTypeInterUni,
	MatchTypeSLUG,
}

// Venue is where a match was played.
type Venue string

const (
	VenueHome Venue = "Home"
	VenueAway Venue = "Away"
)

// Role is a player's primary role in the team.
type Role string

const (
	RoleBatsman      Role = "Batsman"
	RoleBowler       Role = "Bowler"
	RoleAllRounder   Role = "All-rounder"
	RoleWicketKeeper Role = "Wicket-keeper"
)

// BattingStyle is the handedness of a batter.
type BattingStyle string

const (
	BattingStyleRightHand BattingStyle = "Right Hand Bat"
	BattingStyleLeftHand  BattingStyle = "Left Hand Bat"
)

// Match represents one scheduled game.
type Match struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Opponent  string    `json:"opponent"`
	Venue     Venue     `json:"venue"`
	Overs     int       `json:"overs"`
	MatchType MatchType `json:"matchType"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Player represents one team member.
type Player struct {
	ID           string       `json:"id"`
	FullName     string       `json:"fullName"`
	ShortName    string       `json:"shortName"`
	BattingStyle BattingStyle `json:"battingStyle,omitempty"`
	BowlingStyle *string      `json:"bowlingStyle"`
	Role         Role         `json:"role"`
	IsActive     bool         `json:"isActive"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// BattingPerformance is one player's innings in one match.
type BattingPerformance struct {
	ID        string    `json:"id"`
	MatchID   string    `json:"matchId"`
	PlayerID  string    `json:"playerId"`
	Runs      int       `json:"runs"`
	Balls     int       `json:"balls"`
	Fours     int       `json:"fours"`
	Sixes     int       `json:"sixes"`
	Out       bool      `json:"out"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BowlingPerformance is one player's bowling spell in one match.
type BowlingPerformance struct {
	ID        string    `json:"id"`
	MatchID   string    `json:"matchId"`
	PlayerID  string    `json:"playerId"`
	Balls     int       `json:"balls"`
	Runs      int       `json:"runs"`
	Wickets   int       `json:"wickets"`
	Wides     int       `json:"wides"`
	NoBalls   int       `json:"noBalls"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PerformanceFilter scopes a performance lookup. An empty MatchIDs set
// matches nothing; PlayerID is optional.
type PerformanceFilter struct {
	MatchIDs []string
	PlayerID string
}
