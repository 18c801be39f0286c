package stats

import (
	"fmt"
	"testing"

	"github.com/mauv0809/cricket-stats/internal/cricket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentBattingFor(t *testing.T) {
	matches := indexMatches([]cricket.Match{
		match("m1", cricket.MatchTypeDiv3, 1),
		match("m2", cricket.MatchTypePractice, 20),
		match("m3", cricket.MatchTypeSLUG, 10),
	})

	t.Run("newest first with match details", func(t *testing.T) {
		recent := RecentBattingFor([]cricket.BattingPerformance{
			bat("m1", "p1", 10, 12, true),
			bat("m2", "p1", 20, 15, false),
			bat("m3", "p1", 30, 28, true),
		}, matches, RecentLimit)

		require.Len(t, recent, 3)
		assert.Equal(t, "m2", recent[0].MatchID)
		assert.Equal(t, "Practice", recent[0].MatchType)
		assert.Equal(t, "Opp m2", recent[0].Opponent)
		require.NotNil(t, recent[0].Date)
		assert.Equal(t, 20, recent[0].Date.Day())
		assert.Equal(t, "m3", recent[1].MatchID)
		assert.Equal(t, "m1", recent[2].MatchID)
	})

	t.Run("unknown match sorts last with placeholders", func(t *testing.T) {
		recent := RecentBattingFor([]cricket.BattingPerformance{
			bat("gone", "p1", 99, 70, false),
			bat("m1", "p1", 10, 12, true),
		}, matches, RecentLimit)

		require.Len(t, recent, 2)
		assert.Equal(t, "m1", recent[0].MatchID)
		assert.Equal(t, "gone", recent[1].MatchID)
		assert.Equal(t, "—", recent[1].Opponent)
		assert.Equal(t, "—", recent[1].MatchType)
		assert.Nil(t, recent[1].Date)
	})

	t.Run("capped at the limit", func(t *testing.T) {
		many := make([]cricket.Match, 0, 15)
		perfs := make([]cricket.BattingPerformance, 0, 15)
		for i := 1; i <= 15; i++ {
			id := fmt.Sprintf("x%d", i)
			many = append(many, match(id, cricket.MatchTypeDiv3, i))
			perfs = append(perfs, bat(id, "p1", i, i, true))
		}
		recent := RecentBattingFor(perfs, indexMatches(many), RecentLimit)
		require.Len(t, recent, 10)
		assert.Equal(t, "x15", recent[0].MatchID)
		assert.Equal(t, "x6", recent[9].MatchID)
	})

	t.Run("no records gives an empty list", func(t *testing.T) {
		recent := RecentBattingFor(nil, matches, RecentLimit)
		assert.NotNil(t, recent)
		assert.Empty(t, recent)
	})
}

func TestRecentBowlingFor(t *testing.T) {
	matches := indexMatches([]cricket.Match{
		match("m1", cricket.MatchTypeDiv3, 1),
		match("m2", cricket.MatchTypePractice, 20),
	})
	perfs := []cricket.BowlingPerformance{
		bowl("m1", "p1", 24, 20, 5),
		bowl("m2", "p1", 12, 14, 1),
	}
	perfs[0].Wides = 2

	recent := RecentBowlingFor(perfs, matches, RecentLimit)
	require.Len(t, recent, 2)
	assert.Equal(t, "m2", recent[0].MatchID)
	assert.Equal(t, "m1", recent[1].MatchID)
	assert.Equal(t, 5, recent[1].Wickets)
	assert.Equal(t, 2, recent[1].Wides)
	assert.Equal(t, "Div 3", recent[1].MatchType)
}
