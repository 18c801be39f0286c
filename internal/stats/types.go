package stats

import (
	"time"

	"github.com/mauv0809/cricket-stats/internal/cricket"
)

// BattingStats is the team-wide batting report for a set of innings.
type BattingStats struct {
	TotalInnings int     `json:"totalInnings"`
	TotalRuns    int     `json:"totalRuns"`
	TotalBalls   int     `json:"totalBalls"`
	Average      float64 `json:"average"`
	StrikeRate   float64 `json:"strikeRate"`
	HighScore    int     `json:"highScore"`
	NotOuts      int     `json:"notOuts"`
	Ducks        int     `json:"ducks"`
	TotalFours   int     `json:"totalFours"`
	TotalSixes   int     `json:"totalSixes"`
	Fifties      int     `json:"fifties"`
	Hundreds     int     `json:"hundreds"`
}

// BowlingStats is the team-wide bowling report for a set of spells.
type BowlingStats struct {
	TotalMatches int     `json:"totalMatches"`
	TotalWickets int     `json:"totalWickets"`
	TotalBalls   int     `json:"totalBalls"`
	TotalRuns    int     `json:"totalRuns"`
	TotalWides   int     `json:"totalWides"`
	TotalNoBalls int     `json:"totalNoBalls"`
	Overs        string  `json:"overs"`
	Average      float64 `json:"average"`
	Economy      float64 `json:"economy"`
	StrikeRate   float64 `json:"strikeRate"`
	BestFigures  string  `json:"bestFigures"`
	FiveWickets  int     `json:"fiveWickets"`
}

// PlayerBattingRow is one player's batting line.
type PlayerBattingRow struct {
	PlayerID   string  `json:"playerId"`
	PlayerName string  `json:"playerName"`
	Innings    int     `json:"innings"`
	Runs       int     `json:"runs"`
	Average    float64 `json:"average"`
	StrikeRate float64 `json:"strikeRate"`
	HighScore  int     `json:"highScore"`
	NotOuts    int     `json:"notOuts"`
	Ducks      int     `json:"ducks"`
	Fifties    int     `json:"fifties"`
	Hundreds   int     `json:"hundreds"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
}

// PlayerBowlingRow is one player's bowling line.
type PlayerBowlingRow struct {
	PlayerID    string  `json:"playerId"`
	PlayerName  string  `json:"playerName"`
	Wickets     int     `json:"wickets"`
	Overs       string  `json:"overs"`
	Average     float64 `json:"average"`
	Economy     float64 `json:"economy"`
	StrikeRate  float64 `json:"strikeRate"`
	BestFigures string  `json:"bestFigures"`
	FiveWickets int     `json:"fiveWickets"`
	Wides       int     `json:"wides"`
	NoBalls     int     `json:"noBalls"`
}

// FormatBreakdown is the summary of a single format.
type FormatBreakdown struct {
	Batting    BattingStats `json:"batting"`
	Bowling    BowlingStats `json:"bowling"`
	MatchCount int          `json:"matchCount"`
}

// Breakdown holds one entry per recognized format.
type Breakdown map[cricket.MatchType]FormatBreakdown

// RecentBatting is an innings joined with the match it was played in.
type RecentBatting struct {
	MatchID   string     `json:"matchId"`
	Opponent  string     `json:"opponent"`
	Date      *time.Time `json:"date"`
	MatchType string     `json:"matchType"`
	Runs      int        `json:"runs"`
	Balls     int        `json:"balls"`
	Fours     int        `json:"fours"`
	Sixes     int        `json:"sixes"`
	Out       bool       `json:"out"`
}

// RecentBowling is a spell joined with the match it was bowled in.
type RecentBowling struct {
	MatchID   string     `json:"matchId"`
	Opponent  string     `json:"opponent"`
	Date      *time.Time `json:"date"`
	MatchType string     `json:"matchType"`
	Balls     int        `json:"balls"`
	Runs      int        `json:"runs"`
	Wickets   int        `json:"wickets"`
	Wides     int        `json:"wides"`
	NoBalls   int        `json:"noBalls"`
}

// PlayerDetail is everything the player page shows for one format filter.
type PlayerDetail struct {
	Batting       BattingStats    `json:"batting"`
	Bowling       BowlingStats    `json:"bowling"`
	RecentBatting []RecentBatting `json:"recentBatting"`
	RecentBowling []RecentBowling `json:"recentBowling"`
}

// Summary is the digest posted to chat for a format.
type Summary struct {
	MatchType  cricket.MatchType  `json:"matchType"`
	MatchCount int                `json:"matchCount"`
	Batting    BattingStats       `json:"batting"`
	Bowling    BowlingStats       `json:"bowling"`
	TopBatters []PlayerBattingRow `json:"topBatters"`
	TopBowlers []PlayerBowlingRow `json:"topBowlers"`
}

// MilestoneKind names a single-innings achievement.
type MilestoneKind string

const (
	MilestoneFifty          MilestoneKind = "fifty"
	MilestoneHundred        MilestoneKind = "hundred"
	MilestoneFiveWicketHaul MilestoneKind = "five_wicket_haul"
)

// Milestone describes an achievement worth announcing.
type Milestone struct {
	Kind       MilestoneKind
	PlayerID   string
	PlayerName string
	MatchID    string
	Opponent   string
	MatchType  cricket.MatchType
	Date       time.Time
	// Figures is the display form of the performance, e.g. "104* (88)" or "5/20".
	Figures string
}

const (
	// RecentLimit is the number of performances in the recent views.
	RecentLimit = 10
	// NoFigures is shown when there is no bowling to pick best figures from.
	NoFigures = "-"
	// missingMatchField is shown when a performance's match cannot be resolved.
	missingMatchField = "—"
)
