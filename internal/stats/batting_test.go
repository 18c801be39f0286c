package stats

import (
	"testing"

	"github.com/mauv0809/cricket-stats/internal/cricket"
	"github.com/stretchr/testify/assert"
)

func bat(matchID, playerID string, runs, balls int, out bool) cricket.BattingPerformance {
	return cricket.BattingPerformance{MatchID: matchID, PlayerID: playerID, Runs: runs, Balls: balls, Out: out}
}

func TestAggregateBatting(t *testing.T) {
	t.Run("mixed innings", func(t *testing.T) {
		perfs := []cricket.BattingPerformance{
			bat("m1", "p1", 45, 50, true),
			bat("m2", "p1", 0, 3, true),
			bat("m3", "p1", 52, 40, false),
		}
		perfs[0].Fours, perfs[2].Sixes = 4, 2

		s := AggregateBatting(perfs)
		assert.Equal(t, 3, s.TotalInnings)
		assert.Equal(t, 97, s.TotalRuns)
		assert.Equal(t, 93, s.TotalBalls)
		assert.Equal(t, 48.5, s.Average)
		assert.Equal(t, 104.3, s.StrikeRate)
		assert.Equal(t, 52, s.HighScore)
		assert.Equal(t, 1, s.NotOuts)
		assert.Equal(t, 1, s.Ducks)
		assert.Equal(t, 1, s.Fifties)
		assert.Equal(t, 0, s.Hundreds)
		assert.Equal(t, 4, s.TotalFours)
		assert.Equal(t, 2, s.TotalSixes)
	})

	t.Run("no innings", func(t *testing.T) {
		s := AggregateBatting(nil)
		assert.Equal(t, BattingStats{}, s)
	})

	t.Run("never dismissed has zero average", func(t *testing.T) {
		s := AggregateBatting([]cricket.BattingPerformance{bat("m1", "p1", 30, 0, false)})
		assert.Equal(t, 0.0, s.Average)
		assert.Equal(t, 0.0, s.StrikeRate, "no balls faced")
		assert.Equal(t, 1, s.NotOuts)
	})

	t.Run("not-out zero is not a duck", func(t *testing.T) {
		s := AggregateBatting([]cricket.BattingPerformance{bat("m1", "p1", 0, 2, false)})
		assert.Equal(t, 0, s.Ducks)
	})

	t.Run("score bands are exclusive", func(t *testing.T) {
		s := AggregateBatting([]cricket.BattingPerformance{
			bat("m1", "p1", 49, 40, true),
			bat("m2", "p1", 50, 40, true),
			bat("m3", "p1", 99, 80, true),
			bat("m4", "p1", 100, 90, false),
			bat("m5", "p1", 150, 110, true),
		})
		assert.Equal(t, 2, s.Fifties)
		assert.Equal(t, 2, s.Hundreds)
		assert.Equal(t, 150, s.HighScore)
	})
}

func TestAggregatePlayerBatting(t *testing.T) {
	players := map[string]cricket.Player{
		"p1": {ID: "p1", FullName: "Arjun Mehta"},
		"p2": {ID: "p2", FullName: "Zara Ali"},
		"p3": {ID: "p3", FullName: "Tom Baker"},
	}

	t.Run("sorted by runs with first-seen order on ties", func(t *testing.T) {
		rows := AggregatePlayerBatting([]cricket.BattingPerformance{
			bat("m1", "p3", 20, 25, true),
			bat("m1", "p1", 10, 12, true),
			bat("m1", "p2", 64, 50, false),
			bat("m2", "p1", 10, 8, false),
		}, players)

		if assert.Len(t, rows, 3) {
			assert.Equal(t, "p2", rows[0].PlayerID)
			assert.Equal(t, "Zara Ali", rows[0].PlayerName)
			assert.Equal(t, 1, rows[0].Fifties)
			assert.Equal(t, "p3", rows[1].PlayerID, "tied on runs, p3 appeared first")
			assert.Equal(t, "p1", rows[2].PlayerID)
			assert.Equal(t, 2, rows[2].Innings)
			assert.Equal(t, 20.0, rows[2].Average)
			assert.Equal(t, 1, rows[2].NotOuts)
		}
	})

	t.Run("unknown players are skipped", func(t *testing.T) {
		rows := AggregatePlayerBatting([]cricket.BattingPerformance{
			bat("m1", "ghost", 80, 60, true),
			bat("m1", "p1", 5, 6, true),
		}, players)
		if assert.Len(t, rows, 1) {
			assert.Equal(t, "p1", rows[0].PlayerID)
		}
	})

	t.Run("no innings gives an empty list", func(t *testing.T) {
		rows := AggregatePlayerBatting(nil, players)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})
}
