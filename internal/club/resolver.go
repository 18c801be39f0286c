package club

import (
	"context"
	"errors"
	"sort"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cricket-stats/internal/cricket"
)

// PlayerResolver turns a free-text name typed in chat into a player.
type PlayerResolver struct {
	store ClubStore
}

// NewPlayerResolver creates a new PlayerResolver.
func NewPlayerResolver(store ClubStore) *PlayerResolver {
	return &PlayerResolver{store: store}
}

// Resolve returns the player named by query. An exact full or short name wins;
// otherwise a single close match is accepted, and when nothing is close enough
// the best candidates are returned instead of a player.
func (r *PlayerResolver) Resolve(ctx context.Context, query string) (*cricket.Player, []PlayerSuggestion, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil, nil
	}

	player, err := r.store.GetPlayerByName(ctx, query)
	if err == nil {
		return player, nil, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, nil, err
	}

	players, err := r.store.GetAllPlayers(ctx)
	if err != nil {
		return nil, nil, err
	}
	suggestions := findSimilarPlayers(query, players)
	if len(suggestions) > 0 && suggestions[0].Confidence > 0.8 {
		log.Info("Resolved player by close name match",
			"query", query,
			"player", suggestions[0].Player.FullName,
			"confidence", suggestions[0].Confidence)
		return &suggestions[0].Player, nil, nil
	}
	return nil, suggestions, nil
}

// findSimilarPlayers ranks players by how closely their names match query.
func findSimilarPlayers(query string, players []cricket.Player) []PlayerSuggestion {
	var suggestions []PlayerSuggestion
	for _, player := range players {
		score := similarity(query, player)
		if score > 0.3 {
			suggestions = append(suggestions, PlayerSuggestion{
				Player:     player,
				Confidence: score,
				Reasons:    matchReasons(query, player),
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})
	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}
	return suggestions
}

// similarity is the best of the edit-distance scores against the full and
// short names, averaged with the token overlap on the full name.
func similarity(query string, player cricket.Player) float64 {
	q := normalizeName(query)
	if q == "" {
		return 0
	}
	full := normalizeName(player.FullName)
	short := normalizeName(player.ShortName)

	best := stringSimilarity(q, full)
	if s := stringSimilarity(q, short); s > best {
		best = s
	}
	return average(best, tokenSimilarity(q, full))
}

// normalizeName lowercases name and keeps only letters and single spaces.
func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func stringSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}
	if s1 == "" || s2 == "" {
		return 0.0
	}
	r1, r2 := []rune(s1), []rune(s2)
	maxLen := max(len(r1), len(r2))
	return 1.0 - float64(levenshteinDistance(r1, r2))/float64(maxLen)
}

// tokenSimilarity is the share of name parts that closely match a part of the
// other name.
func tokenSimilarity(s1, s2 string) float64 {
	tokens1 := strings.Fields(s1)
	tokens2 := strings.Fields(s2)
	if len(tokens1) == 0 || len(tokens2) == 0 {
		return 0.0
	}

	var matched int
	for _, t1 := range tokens1 {
		for _, t2 := range tokens2 {
			if stringSimilarity(t1, t2) > 0.8 {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(max(len(tokens1), len(tokens2)))
}

func average(scores ...float64) float64 {
	total := 0.0
	for _, s := range scores {
		total += s
	}
	return total / float64(len(scores))
}

func levenshteinDistance(s1, s2 []rune) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(s2)]
}

func matchReasons(query string, player cricket.Player) []string {
	var reasons []string
	q := normalizeName(query)
	full := normalizeName(player.FullName)
	short := normalizeName(player.ShortName)

	if stringSimilarity(q, full) > 0.8 {
		reasons = append(reasons, "Very similar full name")
	}
	if stringSimilarity(q, short) > 0.8 {
		reasons = append(reasons, "Very similar short name")
	}
	if tokenSimilarity(q, full) > 0.5 {
		reasons = append(reasons, "Matching name components")
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "Partial name similarity")
	}
	return reasons
}
