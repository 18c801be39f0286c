package stats

import (
	"sort"

	"github.com/mauv0809/cricket-stats/internal/cricket"
)

// AggregateBowling reduces spells to the team-wide bowling report.
// totalMatches is the number of matches in the current filter.
func AggregateBowling(perfs []cricket.BowlingPerformance, totalMatches int) BowlingStats {
	s := BowlingStats{TotalMatches: totalMatches}
	for _, p := range perfs {
		s.TotalBalls += p.Balls
		s.TotalRuns += p.Runs
		s.TotalWickets += p.Wickets
		s.TotalWides += p.Wides
		s.TotalNoBalls += p.NoBalls
		if p.Wickets >= 5 {
			s.FiveWickets++
		}
	}
	s.Overs = Overs(s.TotalBalls)
	s.Average = ratio(float64(s.TotalRuns), float64(s.TotalWickets))
	s.Economy = Economy(s.TotalRuns, s.TotalBalls)
	s.StrikeRate = ratio(float64(s.TotalBalls), float64(s.TotalWickets))
	s.BestFigures = BestFigures(perfs)
	return s
}

// AggregatePlayerBowling builds one row per player that has bowled, sorted by
// wickets descending. Spells whose player is not in players are left out.
func AggregatePlayerBowling(perfs []cricket.BowlingPerformance, players map[string]cricket.Player) []PlayerBowlingRow {
	order := make([]string, 0)
	grouped := make(map[string][]cricket.BowlingPerformance)
	for _, p := range perfs {
		if _, ok := players[p.PlayerID]; !ok {
			continue
		}
		if _, seen := grouped[p.PlayerID]; !seen {
			order = append(order, p.PlayerID)
		}
		grouped[p.PlayerID] = append(grouped[p.PlayerID], p)
	}

	rows := make([]PlayerBowlingRow, 0, len(order))
	for _, id := range order {
		s := AggregateBowling(grouped[id], 0)
		rows = append(rows, PlayerBowlingRow{
			PlayerID:    id,
			PlayerName:  players[id].FullName,
			Wickets:     s.TotalWickets,
			Overs:       s.Overs,
			Average:     s.Average,
			Economy:     s.Economy,
			StrikeRate:  s.StrikeRate,
			BestFigures: s.BestFigures,
			FiveWickets: s.FiveWickets,
			Wides:       s.TotalWides,
			NoBalls:     s.TotalNoBalls,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Wickets > rows[j].Wickets })
	return rows
}
