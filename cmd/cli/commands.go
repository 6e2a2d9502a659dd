package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

var (
	deckFlag     string
	opponentFlag string
	nameFlag     string
	dateFlag     int64
	diceFlag     string
	orderFlag    string
	resultFlag   string
	byeFlag      bool
	limitFlag    int
	outFlag      string
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(roundCmd)
	rootCmd.AddCommand(finalizeCmd)
	rootCmd.AddCommand(reopenCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(decksCmd)
	rootCmd.AddCommand(matchupsCmd)
	rootCmd.AddCommand(splitsCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(exportCmd)

	createCmd.Flags().StringVar(&deckFlag, "deck", "", "Deck played at the tournament")
	createCmd.Flags().StringVar(&nameFlag, "name", "", "Tournament name")
	createCmd.Flags().Int64Var(&dateFlag, "date", 0, "Tournament date as unix milliseconds (0 = now)")
	createCmd.MarkFlagRequired("deck")

	roundCmd.Flags().StringVar(&opponentFlag, "opponent", "", "Opponent leader")
	roundCmd.Flags().StringVar(&diceFlag, "dice", "none", "Die-roll outcome: won, lost or none")
	roundCmd.Flags().StringVar(&orderFlag, "order", "second", "Play order: first or second")
	roundCmd.Flags().StringVar(&resultFlag, "result", "", "Match result: win or loss")
	roundCmd.Flags().BoolVar(&byeFlag, "bye", false, "Record the round as a bye")
	roundCmd.MarkFlagRequired("result")

	matchupsCmd.Flags().StringVar(&deckFlag, "deck", "", "Deck to report on")
	matchupsCmd.MarkFlagRequired("deck")

	splitsCmd.Flags().StringVar(&deckFlag, "deck", "", "Deck to report on")
	splitsCmd.Flags().StringVar(&opponentFlag, "opponent", "", "Restrict the split to one opponent")
	splitsCmd.MarkFlagRequired("deck")

	suggestCmd.Flags().IntVar(&limitFlag, "limit", 10, "Maximum number of suggestions")

	exportCmd.Flags().StringVar(&outFlag, "out", "optcgjourney.snapshot", "File to write the snapshot to")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all recorded tournaments",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/tournaments")
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Record a new tournament",
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := map[string]any{
			"name": nameFlag,
			"deck": deckFlag,
			"date": dateFlag,
		}
		return performPostRequest("/tournaments", payload)
	},
}

var roundCmd = &cobra.Command{
	Use:   "round <tournament-id>",
	Short: "Append a round to a tournament",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := map[string]any{
			"opponentLeader": opponentFlag,
			"dice":           diceFlag,
			"order":          orderFlag,
			"result":         resultFlag,
			"isBye":          byeFlag,
		}
		return performPostRequest("/tournaments/"+args[0]+"/rounds", payload)
	},
}

var finalizeCmd = &cobra.Command{
	Use:   "finalize <tournament-id>",
	Short: "Lock a tournament against further rounds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/tournaments/"+args[0]+"/finalize", nil)
	},
}

var reopenCmd = &cobra.Command{
	Use:   "reopen <tournament-id>",
	Short: "Lift the finalized lock on a tournament",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/tournaments/"+args[0]+"/reopen", nil)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <tournament-id>",
	Short: "Delete a tournament",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("DELETE", "/tournaments/"+args[0], nil)
	},
}

var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "Show per-deck win/loss aggregates",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/decks")
	},
}

var matchupsCmd = &cobra.Command{
	Use:   "matchups",
	Short: "Show a deck's results grouped by opponent leader",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/decks/matchups?deck=" + url.QueryEscape(deckFlag))
	},
}

var splitsCmd = &cobra.Command{
	Use:   "splits",
	Short: "Show a deck's order and die-roll splits",
	RunE: func(cmd *cobra.Command, args []string) error {
		if opponentFlag != "" {
			return performGetRequest("/decks/matchup-splits?deck=" + url.QueryEscape(deckFlag) +
				"&opponent=" + url.QueryEscape(opponentFlag))
		}
		return performGetRequest("/decks/splits?deck=" + url.QueryEscape(deckFlag))
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <query>",
	Short: "Suggest deck and leader names",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) > 0 {
			query = args[0]
		}
		return performGetRequest(fmt.Sprintf("/decks/suggest?q=%s&limit=%d", url.QueryEscape(query), limitFlag))
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download a snapshot of all tournaments",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := http.Get(host + "/export")
		if err != nil {
			return fmt.Errorf("failed to make request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("export failed with status %d", resp.StatusCode)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}
		if err := os.WriteFile(outFlag, data, 0o644); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		fmt.Printf("Wrote snapshot to %s (%d bytes)\n", outFlag, len(data))
		return nil
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint string, payload any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}
	return performRequest("POST", endpoint, body)
}

func performRequest(method, endpoint string, body io.Reader) error {
	url := host + endpoint
	fmt.Printf("Making %s request to %s\n", method, url)

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
