package stats

import (
	"fmt"

	"github.com/mauv0809/cricket-stats/internal/cricket"
)

// DetectBattingMilestone reports whether an innings reached fifty or a hundred.
func DetectBattingMilestone(p cricket.BattingPerformance, player cricket.Player, match cricket.Match) (Milestone, bool) {
	var kind MilestoneKind
	switch {
	case p.Runs >= 100:
		kind = MilestoneHundred
	case p.Runs >= 50:
		kind = MilestoneFifty
	default:
		return Milestone{}, false
	}
	figures := fmt.Sprintf("%d (%d)", p.Runs, p.Balls)
	if !p.Out {
		figures = fmt.Sprintf("%d* (%d)", p.Runs, p.Balls)
	}
	return newMilestone(kind, player, match, figures), true
}

// DetectBowlingMilestone reports whether a spell was a five-wicket haul.
func DetectBowlingMilestone(p cricket.BowlingPerformance, player cricket.Player, match cricket.Match) (Milestone, bool) {
	if p.Wickets < 5 {
		return Milestone{}, false
	}
	figures := fmt.Sprintf("%d/%d (%s ov)", p.Wickets, p.Runs, Overs(p.Balls))
	return newMilestone(MilestoneFiveWicketHaul, player, match, figures), true
}

func newMilestone(kind MilestoneKind, player cricket.Player, match cricket.Match, figures string) Milestone {
	return Milestone{
		Kind:       kind,
		PlayerID:   player.ID,
		PlayerName: player.FullName,
		MatchID:    match.ID,
		Opponent:   match.Opponent,
		MatchType:  match.MatchType,
		Date:       match.Date,
		Figures:    figures,
	}
}
