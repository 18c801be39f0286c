package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	matchType string
	perPlayer bool
	dryRun    bool
)

func init() {
	for _, cmd := range []*cobra.Command{battingCmd, bowlingCmd} {
		cmd.Flags().StringVar(&matchType, "match-type", "", "Restrict to one format, e.g. \"Div 3\"")
		cmd.Flags().BoolVar(&perPlayer, "per-player", false, "Report one row per player")
	}
	playerCmd.Flags().StringVar(&matchType, "match-type", "", "Restrict to one format, e.g. \"Div 3\"")
	summaryCmd.Flags().StringVar(&matchType, "match-type", "", "Restrict to one format, e.g. \"Div 3\"")
	summaryCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log the summary instead of posting it")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(battingCmd)
	rootCmd.AddCommand(bowlingCmd)
	rootCmd.AddCommand(breakdownCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(countersCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(summaryCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var battingCmd = &cobra.Command{
	Use:   "batting",
	Short: "Show batting stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/stats/batting" + statsQuery())
	},
}

var bowlingCmd = &cobra.Command{
	Use:   "bowling",
	Short: "Show bowling stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/stats/bowling" + statsQuery())
	},
}

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Show batting and bowling for every format",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/stats/breakdown")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/players")
	},
}

var playerCmd = &cobra.Command{
	Use:   "player <id>",
	Short: "Show one player's stats and recent performances",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/players/" + url.PathEscape(args[0]) + "/stats" + statsQuery())
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List the matches, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/matches")
	},
}

var countersCmd = &cobra.Command{
	Use:   "counters",
	Short: "Show the persisted event counters (admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/counters")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Post the team summary to Slack",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		if matchType != "" {
			q.Set("matchType", matchType)
		}
		if dryRun {
			q.Set("dry_run", "true")
		}
		endpoint := "/tasks/send-summary"
		if len(q) > 0 {
			endpoint += "?" + q.Encode()
		}
		return performRequest(http.MethodPost, endpoint)
	},
}

func statsQuery() string {
	q := url.Values{}
	if matchType != "" {
		q.Set("matchType", matchType)
	}
	if perPlayer {
		q.Set("perPlayer", "true")
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func performGetRequest(endpoint string) error {
	return performRequest(http.MethodGet, endpoint)
}

// performRequest logs in first when a password is given, so admin endpoints
// receive the session cookie.
func performRequest(method, endpoint string) error {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return err
	}
	client := &http.Client{Jar: jar}
	if password != "" {
		if err := login(client); err != nil {
			return err
		}
	}

	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}

func login(client *http.Client) error {
	payload, err := json.Marshal(map[string]string{"password": password})
	if err != nil {
		return err
	}
	resp, err := client.Post(host+"/api/auth/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to log in: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login rejected with status %d", resp.StatusCode)
	}
	return nil
}
