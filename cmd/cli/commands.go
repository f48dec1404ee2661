package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	dryRun    bool
	recompute bool
	player    string
	eventID   string
	runLimit  int
)

func init() {
	recomputeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute and log the reports without saving or posting them")
	importCmd.Flags().BoolVar(&recompute, "recompute", false, "Recompute the standings after importing")
	importCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Do not save or post the recomputed standings")
	standingsCmd.Flags().StringVar(&player, "player", "", "Show a single player, matched by name")
	eventsCmd.Flags().StringVar(&eventID, "event", "", "Show the results of a single event")
	runsCmd.Flags().IntVar(&runLimit, "limit", 0, "Number of runs to show (server default when 0)")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(recomputeCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(championsCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var recomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Recompute the season standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, withQuery("/recompute", url.Values{"dry_run": boolParam(dryRun)}), nil)
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the current standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(withQuery("/standings", url.Values{"player": {player}}))
	},
}

var championsCmd = &cobra.Command{
	Use:   "champions",
	Short: "Show every player who has led the season",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/champions")
	},
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the events of the season",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(withQuery("/events", url.Values{"eventID": {eventID}}))
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import event results from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()

		query := url.Values{"recompute": boolParam(recompute), "dry_run": boolParam(dryRun)}
		return performRequest(http.MethodPost, withQuery("/events/import", query), f)
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players of the season",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List the most recent standings runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{}
		if runLimit > 0 {
			query.Set("limit", strconv.Itoa(runLimit))
		}
		return performGetRequest(withQuery("/runs", query))
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func boolParam(b bool) []string {
	if b {
		return []string{"true"}
	}
	return nil
}

// withQuery appends the non-empty values of query to endpoint.
func withQuery(endpoint string, query url.Values) string {
	for k, v := range query {
		if len(v) == 0 || v[0] == "" {
			query.Del(k)
		}
	}
	if len(query) == 0 {
		return endpoint
	}
	return endpoint + "?" + query.Encode()
}

func performGetRequest(endpoint string) error {
	return performRequest(http.MethodGet, endpoint, nil)
}

func performRequest(method, endpoint string, body io.Reader) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "text/csv")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(respBody))

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	return nil
}
