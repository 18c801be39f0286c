package stats

import (
	"sort"

	"github.com/mauv0809/cricket-stats/internal/cricket"
)

// AggregateBatting reduces innings to the team-wide batting report. Records
// are counted whether or not their player still exists.
func AggregateBatting(perfs []cricket.BattingPerformance) BattingStats {
	var s BattingStats
	dismissals := 0
	for _, p := range perfs {
		s.TotalInnings++
		s.TotalRuns += p.Runs
		s.TotalBalls += p.Balls
		s.TotalFours += p.Fours
		s.TotalSixes += p.Sixes
		if p.Out {
			dismissals++
		}
		if p.Runs > s.HighScore {
			s.HighScore = p.Runs
		}
		switch {
		case p.Runs == 0 && p.Out:
			s.Ducks++
		case p.Runs >= 100:
			s.Hundreds++
		case p.Runs >= 50:
			s.Fifties++
		}
	}
	s.NotOuts = s.TotalInnings - dismissals
	s.Average = ratio(float64(s.TotalRuns), float64(dismissals))
	s.StrikeRate = ratio(float64(s.TotalRuns)*100, float64(s.TotalBalls))
	return s
}

// AggregatePlayerBatting builds one row per player that has at least one
// innings, sorted by runs descending. Innings whose player is not in players
// are left out.
func AggregatePlayerBatting(perfs []cricket.BattingPerformance, players map[string]cricket.Player) []PlayerBattingRow {
	order := make([]string, 0)
	grouped := make(map[string][]cricket.BattingPerformance)
	for _, p := range perfs {
		if _, ok := players[p.PlayerID]; !ok {
			continue
		}
		if _, seen := grouped[p.PlayerID]; !seen {
			order = append(order, p.PlayerID)
		}
		grouped[p.PlayerID] = append(grouped[p.PlayerID], p)
	}

	rows := make([]PlayerBattingRow, 0, len(order))
	for _, id := range order {
		s := AggregateBatting(grouped[id])
		rows = append(rows, PlayerBattingRow{
			PlayerID:   id,
			PlayerName: players[id].FullName,
			Innings:    s.TotalInnings,
			Runs:       s.TotalRuns,
			Average:    s.Average,
			StrikeRate: s.StrikeRate,
			HighScore:  s.HighScore,
			NotOuts:    s.NotOuts,
			Ducks:      s.Ducks,
			Fifties:    s.Fifties,
			Hundreds:   s.Hundreds,
			Fours:      s.TotalFours,
			Sixes:      s.TotalSixes,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Runs > rows[j].Runs })
	return rows
}
