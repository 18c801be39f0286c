package stats

import (
	"testing"

	"github.com/mauv0809/cricket-stats/internal/cricket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeBreakdown(t *testing.T) {
	matches := []cricket.Match{
		match("m1", cricket.MatchTypeDiv3, 1),
		match("m2", cricket.MatchTypeDiv3, 2),
		match("m3", cricket.MatchTypePractice, 3),
	}
	batting := []cricket.BattingPerformance{
		bat("m1", "p1", 30, 25, true),
		bat("m2", "p1", 70, 60, false),
		bat("m3", "p2", 12, 10, true),
		bat("deleted", "p1", 200, 100, false),
	}
	bowling := []cricket.BowlingPerformance{
		bowl("m1", "p2", 24, 20, 5),
		bowl("deleted", "p2", 24, 0, 10),
	}

	b := ComposeBreakdown(matches, batting, bowling)

	t.Run("every format is present", func(t *testing.T) {
		require.Len(t, b, len(cricket.MatchTypes))
		for _, mt := range cricket.MatchTypes {
			assert.Contains(t, b, mt)
		}
		assert.NotContains(t, b, cricket.MatchTypeAll)
	})

	t.Run("per format totals", func(t *testing.T) {
		div3 := b[cricket.MatchTypeDiv3]
		assert.Equal(t, 2, div3.MatchCount)
		assert.Equal(t, 100, div3.Batting.TotalRuns)
		assert.Equal(t, 1, div3.Batting.Fifties)
		assert.Equal(t, 2, div3.Bowling.TotalMatches)
		assert.Equal(t, "5/20", div3.Bowling.BestFigures)

		practice := b[cricket.MatchTypePractice]
		assert.Equal(t, 1, practice.MatchCount)
		assert.Equal(t, 12, practice.Batting.TotalRuns)
		assert.Equal(t, NoFigures, practice.Bowling.BestFigures)
	})

	t.Run("formats without matches are zeroed", func(t *testing.T) {
		slug := b[cricket.MatchTypeSLUG]
		assert.Equal(t, 0, slug.MatchCount)
		assert.Equal(t, 0, slug.Batting.TotalInnings)
		assert.Equal(t, "0.0", slug.Bowling.Overs)
	})

	t.Run("orphaned performances are excluded", func(t *testing.T) {
		total := 0
		for _, f := range b {
			total += f.Batting.TotalRuns
		}
		assert.Equal(t, 112, total)
		assert.Equal(t, 5, b[cricket.MatchTypeDiv3].Bowling.TotalWickets)
	})
}
