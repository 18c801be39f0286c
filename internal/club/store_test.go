package club_test

import (
	"context"
	"testing"
	"time"

	"github.com/mauv0809/cricket-stats/internal/club"
	"github.com/mauv0809/cricket-stats/internal/cricket"
	"github.com/mauv0809/cricket-stats/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) club.ClubStore {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	t.Cleanup(teardown)

	return club.New(db)
}

func day(d int) time.Time {
	return time.Date(2025, 5, d, 0, 0, 0, 0, time.UTC)
}

func TestPlayers(t *testing.T) {
	ctx := context.Background()
	store := setupTestDB(t)

	spin := "Right-arm off break"
	zara := &cricket.Player{FullName: "Zara Ali", ShortName: "Zara", Role: cricket.RoleBowler, BowlingStyle: &spin}
	arjun := &cricket.Player{FullName: "Arjun Mehta", ShortName: "AJ", Role: cricket.RoleBatsman, BattingStyle: cricket.BattingStyleLeftHand}
	require.NoError(t, store.CreatePlayer(ctx, zara))
	require.NoError(t, store.CreatePlayer(ctx, arjun))
	require.NotEmpty(t, zara.ID)
	assert.True(t, zara.IsActive)

	t.Run("get by id", func(t *testing.T) {
		got, err := store.GetPlayer(ctx, zara.ID)
		require.NoError(t, err)
		assert.Equal(t, "Zara Ali", got.FullName)
		require.NotNil(t, got.BowlingStyle)
		assert.Equal(t, spin, *got.BowlingStyle)
		assert.Empty(t, got.BattingStyle)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.GetPlayer(ctx, "nope")
		assert.ErrorIs(t, err, club.ErrNotFound)
	})

	t.Run("by name ignores case and matches short name", func(t *testing.T) {
		got, err := store.GetPlayerByName(ctx, "zara ali")
		require.NoError(t, err)
		assert.Equal(t, zara.ID, got.ID)

		got, err = store.GetPlayerByName(ctx, "aj")
		require.NoError(t, err)
		assert.Equal(t, arjun.ID, got.ID)
	})

	t.Run("all players sorted by full name", func(t *testing.T) {
		all, err := store.GetAllPlayers(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Arjun Mehta", all[0].FullName)
		assert.Equal(t, "Zara Ali", all[1].FullName)
	})

	t.Run("get players skips unknown ids", func(t *testing.T) {
		got, err := store.GetPlayers(ctx, []string{zara.ID, "ghost"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, zara.ID, got[0].ID)

		got, err = store.GetPlayers(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("update", func(t *testing.T) {
		arjun.Role = cricket.RoleAllRounder
		arjun.IsActive = false
		require.NoError(t, store.UpdatePlayer(ctx, arjun))

		got, err := store.GetPlayer(ctx, arjun.ID)
		require.NoError(t, err)
		assert.Equal(t, cricket.RoleAllRounder, got.Role)
		assert.False(t, got.IsActive)
		assert.Equal(t, cricket.BattingStyleLeftHand, got.BattingStyle)

		err = store.UpdatePlayer(ctx, &cricket.Player{ID: "ghost", FullName: "x", ShortName: "x", Role: cricket.RoleBowler})
		assert.ErrorIs(t, err, club.ErrNotFound)
	})
}

func TestMatches(t *testing.T) {
	ctx := context.Background()
	store := setupTestDB(t)

	older := &cricket.Match{Date: day(3), Opponent: "Riverside", Venue: cricket.VenueHome, Overs: 20, MatchType: cricket.MatchTypeDiv3}
	newer := &cricket.Match{Date: day(10), Opponent: "Hillside", Venue: cricket.VenueAway, Overs: 40, MatchType: cricket.MatchTypePractice}
	require.NoError(t, store.CreateMatch(ctx, older))
	require.NoError(t, store.CreateMatch(ctx, newer))

	t.Run("all matches newest first", func(t *testing.T) {
		all, err := store.GetAllMatches(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, newer.ID, all[0].ID)
		assert.Equal(t, day(10), all[0].Date)
	})

	t.Run("find and count by format", func(t *testing.T) {
		found, err := store.FindMatches(ctx, cricket.MatchTypeDiv3)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, older.ID, found[0].ID)

		found, err = store.FindMatches(ctx, "Unknown Format")
		require.NoError(t, err)
		assert.Len(t, found, 2)

		count, err := store.CountMatches(ctx, cricket.MatchTypePractice)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		count, err = store.CountMatches(ctx, cricket.MatchTypeAll)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("update", func(t *testing.T) {
		older.Overs = 25
		older.Opponent = "Riverside CC"
		require.NoError(t, store.UpdateMatch(ctx, older))

		got, err := store.GetMatch(ctx, older.ID)
		require.NoError(t, err)
		assert.Equal(t, 25, got.Overs)
		assert.Equal(t, "Riverside CC", got.Opponent)

		err = store.UpdateMatch(ctx, &cricket.Match{ID: "ghost", Date: day(1), Overs: 1})
		assert.ErrorIs(t, err, club.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.DeleteMatch(ctx, newer.ID))
		_, err := store.GetMatch(ctx, newer.ID)
		assert.ErrorIs(t, err, club.ErrNotFound)
		assert.ErrorIs(t, store.DeleteMatch(ctx, newer.ID), club.ErrNotFound)
	})
}

func TestPerformances(t *testing.T) {
	ctx := context.Background()
	store := setupTestDB(t)

	t.Run("batting upsert keeps one record per match and player", func(t *testing.T) {
		first := &cricket.BattingPerformance{MatchID: "m1", PlayerID: "p1", Runs: 12, Balls: 20}
		require.NoError(t, store.UpsertBattingPerformance(ctx, first))
		require.NotEmpty(t, first.ID)

		second := &cricket.BattingPerformance{MatchID: "m1", PlayerID: "p1", Runs: 54, Balls: 41, Fours: 6, Out: true}
		require.NoError(t, store.UpsertBattingPerformance(ctx, second))
		assert.Equal(t, first.ID, second.ID, "the original row is updated in place")

		perfs, err := store.FindBattingPerformances(ctx, cricket.PerformanceFilter{MatchIDs: []string{"m1"}})
		require.NoError(t, err)
		require.Len(t, perfs, 1)
		assert.Equal(t, 54, perfs[0].Runs)
		assert.Equal(t, 6, perfs[0].Fours)
		assert.True(t, perfs[0].Out)
	})

	t.Run("bowling upsert overwrites counters", func(t *testing.T) {
		require.NoError(t, store.UpsertBowlingPerformance(ctx, &cricket.BowlingPerformance{MatchID: "m1", PlayerID: "p2", Balls: 24, Runs: 30, Wickets: 1}))
		require.NoError(t, store.UpsertBowlingPerformance(ctx, &cricket.BowlingPerformance{MatchID: "m1", PlayerID: "p2", Balls: 24, Runs: 20, Wickets: 5, Wides: 2}))

		got, err := store.GetBowlingPerformance(ctx, "m1", "p2")
		require.NoError(t, err)
		assert.Equal(t, 5, got.Wickets)
		assert.Equal(t, 20, got.Runs)
		assert.Equal(t, 2, got.Wides)
		assert.Equal(t, 0, got.NoBalls)
	})

	t.Run("filters by match set and player", func(t *testing.T) {
		require.NoError(t, store.UpsertBattingPerformance(ctx, &cricket.BattingPerformance{MatchID: "m2", PlayerID: "p1", Runs: 3}))
		require.NoError(t, store.UpsertBattingPerformance(ctx, &cricket.BattingPerformance{MatchID: "m2", PlayerID: "p2", Runs: 7}))

		perfs, err := store.FindBattingPerformances(ctx, cricket.PerformanceFilter{MatchIDs: []string{"m1", "m2"}, PlayerID: "p1"})
		require.NoError(t, err)
		require.Len(t, perfs, 2)
		assert.Equal(t, "m1", perfs[0].MatchID)
		assert.Equal(t, "m2", perfs[1].MatchID)

		perfs, err = store.FindBattingPerformances(ctx, cricket.PerformanceFilter{MatchIDs: []string{"m2"}})
		require.NoError(t, err)
		assert.Len(t, perfs, 2)
	})

	t.Run("empty match set matches nothing", func(t *testing.T) {
		batting, err := store.FindBattingPerformances(ctx, cricket.PerformanceFilter{PlayerID: "p1"})
		require.NoError(t, err)
		assert.Empty(t, batting)
		assert.NotNil(t, batting)

		bowling, err := store.FindBowlingPerformances(ctx, cricket.PerformanceFilter{})
		require.NoError(t, err)
		assert.Empty(t, bowling)
	})

	t.Run("missing record", func(t *testing.T) {
		_, err := store.GetBattingPerformance(ctx, "m9", "p1")
		assert.ErrorIs(t, err, club.ErrNotFound)
	})
}

func TestDeleteMatchLeavesPerformances(t *testing.T) {
	ctx := context.Background()
	store := setupTestDB(t)

	m := &cricket.Match{Date: day(1), Opponent: "Lakeside", Venue: cricket.VenueHome, Overs: 20, MatchType: cricket.MatchTypeSLUG}
	require.NoError(t, store.CreateMatch(ctx, m))
	require.NoError(t, store.UpsertBattingPerformance(ctx, &cricket.BattingPerformance{MatchID: m.ID, PlayerID: "p1", Runs: 40}))
	require.NoError(t, store.DeleteMatch(ctx, m.ID))

	perfs, err := store.FindBattingPerformances(ctx, cricket.PerformanceFilter{MatchIDs: []string{m.ID}})
	require.NoError(t, err)
	assert.Len(t, perfs, 1, "performances are not cascaded")
}
