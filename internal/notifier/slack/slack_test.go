package slack

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mauv0809/cricket-stats/internal/cricket"
	"github.com/mauv0809/cricket-stats/internal/metrics"
	"github.com/mauv0809/cricket-stats/internal/stats"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
	calls                  int
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	m.calls++
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

// render serializes a formatted message so tests can look for text in it.
func render(t *testing.T, v any) string {
	t.Helper()
	msg, ok := v.(slackapi.Message)
	require.True(t, ok, "expected a slack.Message, got %T", v)
	raw, err := json.Marshal(msg)
	require.NoError(t, err)
	return string(raw)
}

func TestSendMessage_DryRun(t *testing.T) {
	m := metrics.NewMock()
	api := &mockSlackAPI{}
	notifier := NewNotifierWithAPI(api, "C123", m)

	_, _, err := notifier.sendMessage(slackapi.NewBlockMessage(), true)
	require.NoError(t, err)
	assert.Zero(t, api.calls, "dry run must not post")
	assert.Zero(t, m.SlackNotifSent())
}

func TestSendMessage_NoToken(t *testing.T) {
	notifier := NewNotifier("", "C123", metrics.NewMock())
	_, _, err := notifier.sendMessage(slackapi.NewBlockMessage(), false)
	require.NoError(t, err)
}

func TestSendMessage_Success(t *testing.T) {
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			assert.Equal(t, "C123", channelID)
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return "C123", "ts123", nil
		},
	}
	m := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", m)

	err := notifier.SendMilestone(stats.Milestone{Kind: stats.MilestoneFifty, PlayerName: "Arjun Mehta", Figures: "54 (41)"}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, api.calls)
	assert.Equal(t, 1, m.SlackNotifSent())
	assert.Equal(t, 0, m.SlackNotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}
	m := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", m)

	err := notifier.SendSummary(&stats.Summary{MatchType: cricket.MatchTypeAll}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, m.SlackNotifSent())
	assert.Equal(t, 1, m.SlackNotifFailed())
}

func TestFormatMilestone(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())
	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		kind stats.MilestoneKind
		want string
	}{
		{stats.MilestoneFifty, "Fifty for Zara Ali"},
		{stats.MilestoneHundred, "Hundred for Zara Ali"},
		{stats.MilestoneFiveWicketHaul, "Five-wicket haul for Zara Ali"},
	}
	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			msg := notifier.formatMilestone(stats.Milestone{
				Kind:       tc.kind,
				PlayerName: "Zara Ali",
				Opponent:   "Riverside CC",
				MatchType:  cricket.MatchTypeDiv3,
				Date:       date,
				Figures:    "5/20 (4.0 ov)",
			})
			out := render(t, msg)
			assert.Contains(t, out, tc.want)
			assert.Contains(t, out, "Riverside CC")
			assert.Contains(t, out, "Div 3")
			assert.Contains(t, out, "Sat 14 Jun 2025")
		})
	}
}

func TestFormatSummary(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())

	t.Run("empty", func(t *testing.T) {
		out := render(t, notifier.formatSummary(&stats.Summary{MatchType: cricket.MatchTypeSLUG}))
		assert.Contains(t, out, "Team summary: SLUG")
		assert.Contains(t, out, "No matches recorded yet.")
	})

	t.Run("with performers", func(t *testing.T) {
		out := render(t, notifier.formatSummary(&stats.Summary{
			MatchType:  cricket.MatchTypeAll,
			MatchCount: 3,
			Batting:    stats.BattingStats{TotalRuns: 135, Average: 33.75},
			Bowling:    stats.BowlingStats{TotalWickets: 8, Overs: "9.0", BestFigures: "5/20"},
			TopBatters: []stats.PlayerBattingRow{{PlayerName: "Arjun Mehta", Runs: 97, HighScore: 52}},
			TopBowlers: []stats.PlayerBowlingRow{{PlayerName: "Zara Ali", Wickets: 6, BestFigures: "5/20"}},
		}))
		assert.Contains(t, out, "All formats")
		assert.Contains(t, out, "135 @ 33.75")
		assert.Contains(t, out, "Arjun Mehta: 97 runs")
		assert.Contains(t, out, "Zara Ali: 6 wkts")
	})
}

func TestFormatResponses(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())

	t.Run("leaderboard", func(t *testing.T) {
		resp, err := notifier.FormatLeaderboardResponse(cricket.MatchTypePractice,
			[]stats.PlayerBattingRow{{PlayerName: "A"}, {PlayerName: "B"}},
			nil)
		require.NoError(t, err)
		out := render(t, resp)
		assert.Contains(t, out, "Leaderboard: Practice")
		assert.Contains(t, out, "Top run scorers")
		assert.NotContains(t, out, "Top wicket takers")
	})

	t.Run("empty leaderboard", func(t *testing.T) {
		resp, err := notifier.FormatLeaderboardResponse(cricket.MatchTypeAll, nil, nil)
		require.NoError(t, err)
		assert.Contains(t, render(t, resp), "No stats available yet")
	})

	t.Run("player stats", func(t *testing.T) {
		resp, err := notifier.FormatPlayerStatsResponse(
			&cricket.Player{FullName: "Arjun Mehta"},
			cricket.MatchTypeAll,
			&stats.PlayerDetail{
				Batting:       stats.BattingStats{TotalRuns: 97, TotalInnings: 3, Average: 48.5},
				Bowling:       stats.BowlingStats{Overs: "2.0", BestFigures: "2/14"},
				RecentBatting: []stats.RecentBatting{{Runs: 52, Opponent: "Hillside"}, {Runs: 0, Out: true, Opponent: "Lakeside"}},
			})
		require.NoError(t, err)
		out := render(t, resp)
		assert.Contains(t, out, "Arjun Mehta (All formats)")
		assert.Contains(t, out, "97 runs in 3 innings, avg 48.50")
		assert.Contains(t, out, "52* v Hillside")
		assert.Contains(t, out, "0 v Lakeside")
	})

	t.Run("player not found", func(t *testing.T) {
		resp, err := notifier.FormatPlayerNotFoundResponse("Tom", []string{"Tom Baker"})
		require.NoError(t, err)
		out := render(t, resp)
		assert.Contains(t, out, "couldn't find a player matching *Tom*")
		assert.Contains(t, out, "Did you mean: Tom Baker?")
	})
}
