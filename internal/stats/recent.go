package stats

import (
	"sort"
	"time"

	"github.com/mauv0809/cricket-stats/internal/cricket"
)

type matchInfo struct {
	opponent  string
	date      *time.Time
	matchType string
	sortKey   int64
}

// lookupMatch resolves display fields for a performance's match. A match that
// cannot be resolved sorts as the oldest entry.
func lookupMatch(matches map[string]cricket.Match, matchID string) matchInfo {
	m, ok := matches[matchID]
	if !ok {
		return matchInfo{opponent: missingMatchField, matchType: missingMatchField}
	}
	info := matchInfo{opponent: m.Opponent, matchType: string(m.MatchType)}
	if info.opponent == "" {
		info.opponent = missingMatchField
	}
	if info.matchType == "" {
		info.matchType = missingMatchField
	}
	if !m.Date.IsZero() {
		d := m.Date
		info.date = &d
		info.sortKey = d.UnixMilli()
	}
	return info
}

// RecentBattingFor returns up to limit innings, newest match first.
func RecentBattingFor(perfs []cricket.BattingPerformance, matches map[string]cricket.Match, limit int) []RecentBatting {
	type keyed struct {
		item RecentBatting
		key  int64
	}
	items := make([]keyed, 0, len(perfs))
	for _, p := range perfs {
		info := lookupMatch(matches, p.MatchID)
		items = append(items, keyed{
			key: info.sortKey,
			item: RecentBatting{
				MatchID:   p.MatchID,
				Opponent:  info.opponent,
				Date:      info.date,
				MatchType: info.matchType,
				Runs:      p.Runs,
				Balls:     p.Balls,
				Fours:     p.Fours,
				Sixes:     p.Sixes,
				Out:       p.Out,
			},
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].key > items[j].key })

	recent := make([]RecentBatting, 0, min(limit, len(items)))
	for i := 0; i < len(items) && i < limit; i++ {
		recent = append(recent, items[i].item)
	}
	return recent
}

// RecentBowlingFor returns up to limit spells, newest match first.
func RecentBowlingFor(perfs []cricket.BowlingPerformance, matches map[string]cricket.Match, limit int) []RecentBowling {
	type keyed struct {
		item RecentBowling
		key  int64
	}
	items := make([]keyed, 0, len(perfs))
	for _, p := range perfs {
		info := lookupMatch(matches, p.MatchID)
		items = append(items, keyed{
			key: info.sortKey,
			item: RecentBowling{
				MatchID:   p.MatchID,
				Opponent:  info.opponent,
				Date:      info.date,
				MatchType: info.matchType,
				Balls:     p.Balls,
				Runs:      p.Runs,
				Wickets:   p.Wickets,
				Wides:     p.Wides,
				NoBalls:   p.NoBalls,
			},
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].key > items[j].key })

	recent := make([]RecentBowling, 0, min(limit, len(items)))
	for i := 0; i < len(items) && i < limit; i++ {
		recent = append(recent, items[i].item)
	}
	return recent
}
