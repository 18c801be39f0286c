package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cricket-stats/internal/cricket"
	"github.com/mauv0809/cricket-stats/internal/metrics"
	"github.com/mauv0809/cricket-stats/internal/notifier"
	"github.com/mauv0809/cricket-stats/internal/stats"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier. Without a token every message is logged
// as in dry-run mode.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	var api slackClient
	if token != "" {
		api = slack.New(token)
	} else {
		log.Warn("SLACK_BOT_TOKEN is not set, Slack messages will only be logged")
	}
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun || s.api == nil {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-channel", "dry-run-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionText(message.Text, false),
	)
	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendMilestone(milestone stats.Milestone, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatMilestone(milestone), dryRun)
	return err
}

func (s *Notifier) SendSummary(summary *stats.Summary, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatSummary(summary), dryRun)
	return err
}

// FormatLeaderboardResponse formats the top scorers and wicket takers for a slash command response.
func (s *Notifier) FormatLeaderboardResponse(matchType cricket.MatchType, batters []stats.PlayerBattingRow, bowlers []stats.PlayerBowlingRow) (any, error) {
	return s.formatLeaderboard(matchType, batters, bowlers), nil
}

// FormatPlayerStatsResponse formats a player's figures for a slash command response.
func (s *Notifier) FormatPlayerStatsResponse(player *cricket.Player, matchType cricket.MatchType, detail *stats.PlayerDetail) (any, error) {
	return s.formatPlayerStats(player, matchType, detail), nil
}

// FormatPlayerNotFoundResponse formats a player not found message for a slash command response.
func (s *Notifier) FormatPlayerNotFoundResponse(query string, suggestions []string) (any, error) {
	return s.formatPlayerNotFound(query, suggestions), nil
}

func plain(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, true, false)
}

func mrkdwn(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, text, false, false)
}

func formatLabel(matchType cricket.MatchType) string {
	if matchType == cricket.MatchTypeAll || matchType == "" {
		return "All formats"
	}
	return string(matchType)
}

// formatMilestone announces a fifty, hundred or five-wicket haul.
func (s *Notifier) formatMilestone(m stats.Milestone) slack.Message {
	var title string
	switch m.Kind {
	case stats.MilestoneHundred:
		title = fmt.Sprintf("💯 Hundred for %s!", m.PlayerName)
	case stats.MilestoneFifty:
		title = fmt.Sprintf("🏏 Fifty for %s!", m.PlayerName)
	case stats.MilestoneFiveWicketHaul:
		title = fmt.Sprintf("🎯 Five-wicket haul for %s!", m.PlayerName)
	default:
		title = fmt.Sprintf("Milestone for %s", m.PlayerName)
	}

	details := fmt.Sprintf("*%s* vs %s", m.Figures, m.Opponent)
	blocks := []slack.Block{
		slack.NewHeaderBlock(plain(title)),
		slack.NewSectionBlock(mrkdwn(details), nil, nil),
		slack.NewContextBlock("", plain(fmt.Sprintf("%s • %s", formatLabel(m.MatchType), m.Date.Format("Mon 02 Jan 2006")))),
	}
	msg := slack.NewBlockMessage(blocks...)
	msg.Text = title
	return msg
}

// formatSummary builds the digest of team totals and top performers.
func (s *Notifier) formatSummary(summary *stats.Summary) slack.Message {
	title := fmt.Sprintf("📊 Team summary: %s", formatLabel(summary.MatchType))
	blocks := []slack.Block{slack.NewHeaderBlock(plain(title))}

	if summary.MatchCount == 0 {
		blocks = append(blocks, slack.NewSectionBlock(plain("No matches recorded yet."), nil, nil))
		msg := slack.NewBlockMessage(blocks...)
		msg.Text = title
		return msg
	}

	b, w := summary.Batting, summary.Bowling
	fields := []*slack.TextBlockObject{
		mrkdwn(fmt.Sprintf("*Matches*\n%d", summary.MatchCount)),
		mrkdwn(fmt.Sprintf("*Runs*\n%d @ %.2f (SR %.2f)", b.TotalRuns, b.Average, b.StrikeRate)),
		mrkdwn(fmt.Sprintf("*50s / 100s*\n%d / %d", b.Fifties, b.Hundreds)),
		mrkdwn(fmt.Sprintf("*Wickets*\n%d @ %.2f (Econ %.2f)", w.TotalWickets, w.Average, w.Economy)),
		mrkdwn(fmt.Sprintf("*Overs*\n%s", w.Overs)),
		mrkdwn(fmt.Sprintf("*Best bowling*\n%s", w.BestFigures)),
	}
	blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil), slack.NewDividerBlock())
	blocks = append(blocks, s.leaderboardBlocks(summary.TopBatters, summary.TopBowlers)...)

	msg := slack.NewBlockMessage(blocks...)
	msg.Text = title
	return msg
}

func (s *Notifier) formatLeaderboard(matchType cricket.MatchType, batters []stats.PlayerBattingRow, bowlers []stats.PlayerBowlingRow) slack.Message {
	title := fmt.Sprintf("🏆 Leaderboard: %s", formatLabel(matchType))
	blocks := []slack.Block{slack.NewHeaderBlock(plain(title))}
	if len(batters) == 0 && len(bowlers) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(plain("No stats available yet. Go play some cricket!"), nil, nil))
	} else {
		blocks = append(blocks, s.leaderboardBlocks(batters, bowlers)...)
	}
	msg := slack.NewBlockMessage(blocks...)
	msg.Text = title
	return msg
}

func (s *Notifier) leaderboardBlocks(batters []stats.PlayerBattingRow, bowlers []stats.PlayerBowlingRow) []slack.Block {
	var blocks []slack.Block
	if len(batters) > 0 {
		lines := make([]string, 0, len(batters))
		for i, r := range batters {
			lines = append(lines, fmt.Sprintf("%d. %s%s: %d runs (HS %d, avg %.2f)", i+1, medal(i), r.PlayerName, r.Runs, r.HighScore, r.Average))
		}
		blocks = append(blocks, slack.NewSectionBlock(mrkdwn("*Top run scorers*\n"+strings.Join(lines, "\n")), nil, nil))
	}
	if len(bowlers) > 0 {
		lines := make([]string, 0, len(bowlers))
		for i, r := range bowlers {
			lines = append(lines, fmt.Sprintf("%d. %s%s: %d wkts (best %s, econ %.2f)", i+1, medal(i), r.PlayerName, r.Wickets, r.BestFigures, r.Economy))
		}
		blocks = append(blocks, slack.NewSectionBlock(mrkdwn("*Top wicket takers*\n"+strings.Join(lines, "\n")), nil, nil))
	}
	return blocks
}

func medal(rank int) string {
	switch rank {
	case 0:
		return "🥇 "
	case 1:
		return "🥈 "
	case 2:
		return "🥉 "
	}
	return ""
}

// formatPlayerStats creates a Slack message to display a single player's figures.
func (s *Notifier) formatPlayerStats(player *cricket.Player, matchType cricket.MatchType, d *stats.PlayerDetail) slack.Message {
	title := fmt.Sprintf("🏏 %s (%s)", player.FullName, formatLabel(matchType))
	b, w := d.Batting, d.Bowling

	batting := fmt.Sprintf("*Batting*\n> %d runs in %d innings, avg %.2f, SR %.2f\n> HS %d • 50s %d • 100s %d • ducks %d",
		b.TotalRuns, b.TotalInnings, b.Average, b.StrikeRate, b.HighScore, b.Fifties, b.Hundreds, b.Ducks)
	bowling := fmt.Sprintf("*Bowling*\n> %d wickets in %s overs, avg %.2f, econ %.2f\n> Best %s • 5w %d",
		w.TotalWickets, w.Overs, w.Average, w.Economy, w.BestFigures, w.FiveWickets)

	blocks := []slack.Block{
		slack.NewHeaderBlock(plain(title)),
		slack.NewSectionBlock(mrkdwn(batting), nil, nil),
		slack.NewSectionBlock(mrkdwn(bowling), nil, nil),
	}

	if len(d.RecentBatting) > 0 {
		recent := d.RecentBatting[:min(3, len(d.RecentBatting))]
		parts := make([]string, 0, len(recent))
		for _, r := range recent {
			score := fmt.Sprintf("%d", r.Runs)
			if !r.Out {
				score += "*"
			}
			parts = append(parts, fmt.Sprintf("%s v %s", score, r.Opponent))
		}
		blocks = append(blocks, slack.NewContextBlock("", plain("Recent: "+strings.Join(parts, " • "))))
	}

	msg := slack.NewBlockMessage(blocks...)
	msg.Text = title
	return msg
}

// formatPlayerNotFound creates a Slack message for when no player matches the query.
func (s *Notifier) formatPlayerNotFound(query string, suggestions []string) slack.Message {
	text := fmt.Sprintf("Sorry, I couldn't find a player matching *%s*. Try a different name.", query)
	if len(suggestions) > 0 {
		text += "\nDid you mean: " + strings.Join(suggestions, ", ") + "?"
	}
	msg := slack.NewBlockMessage(slack.NewSectionBlock(mrkdwn(text), nil, nil))
	msg.Text = text
	return msg
}
