package stats

import "github.com/mauv0809/cricket-stats/internal/cricket"

// ComposeBreakdown reports batting, bowling and match count for every
// recognized format, including formats nobody has played yet. Performances
// whose match is not in matches belong to no format.
func ComposeBreakdown(matches []cricket.Match, batting []cricket.BattingPerformance, bowling []cricket.BowlingPerformance) Breakdown {
	formatOf := make(map[string]cricket.MatchType, len(matches))
	matchCount := make(map[cricket.MatchType]int, len(cricket.MatchTypes))
	for _, m := range matches {
		formatOf[m.ID] = m.MatchType
		matchCount[m.MatchType]++
	}

	battingByFormat := make(map[cricket.MatchType][]cricket.BattingPerformance)
	for _, p := range batting {
		if mt, ok := formatOf[p.MatchID]; ok {
			battingByFormat[mt] = append(battingByFormat[mt], p)
		}
	}
	bowlingByFormat := make(map[cricket.MatchType][]cricket.BowlingPerformance)
	for _, p := range bowling {
		if mt, ok := formatOf[p.MatchID]; ok {
			bowlingByFormat[mt] = append(bowlingByFormat[mt], p)
		}
	}

	breakdown := make(Breakdown, len(cricket.MatchTypes))
	for _, mt := range cricket.MatchTypes {
		breakdown[mt] = FormatBreakdown{
			Batting:    AggregateBatting(battingByFormat[mt]),
			Bowling:    AggregateBowling(bowlingByFormat[mt], matchCount[mt]),
			MatchCount: matchCount[mt],
		}
	}
	return breakdown
}
