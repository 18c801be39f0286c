package stats

import "github.com/mauv0809/cricket-stats/internal/cricket"

// FilterMatches returns the matches of the requested format. Unknown formats
// widen to every match.
func FilterMatches(matches []cricket.Match, matchType cricket.MatchType) []cricket.Match {
	matchType = cricket.ParseMatchType(string(matchType))
	if matchType == cricket.MatchTypeAll {
		return matches
	}
	filtered := make([]cricket.Match, 0, len(matches))
	for _, m := range matches {
		if m.MatchType == matchType {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// MatchIDs returns the identifiers of matches, in order.
func MatchIDs(matches []cricket.Match) []string {
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	return ids
}

func indexMatches(matches []cricket.Match) map[string]cricket.Match {
	byID := make(map[string]cricket.Match, len(matches))
	for _, m := range matches {
		byID[m.ID] = m
	}
	return byID
}

func indexPlayers(players []cricket.Player) map[string]cricket.Player {
	byID := make(map[string]cricket.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}
	return byID
}
