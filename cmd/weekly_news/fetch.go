package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alx/weekly-news/internal/config"
	"github.com/alx/weekly-news/internal/linkace"
	"github.com/alx/weekly-news/internal/logger"
	"github.com/alx/weekly-news/internal/observability"
)

var fetchCommand = &cobra.Command{
	Use:   "fetch",
	Short: "List this week's qualifying links without generating a digest",
	Long:  "Fetches the trailing-week links from the configured LinkAce list and prints them. Useful to preview what a generate run would feed the completion service.",
	RunE:  runFetch,
}

var fetchListID int

func init() {
	fetchCommand.Flags().IntVar(&fetchListID, "list-id", 0, "LinkAce list ID to fetch (default from TARGET_LIST_ID)")

	rootCmd.AddCommand(fetchCommand)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("list-id") {
		cfg.ListID = fetchListID
	}

	// Only the bookmark side of the config matters here.
	if cfg.LinkAceBaseURL == "" || cfg.LinkAceAPIKey == "" {
		return fmt.Errorf("config error: LINKACE_BASE_URL and LINKACE_API_KEY are required")
	}

	log := logger.New("info", true)
	defer func() { _ = log.Sync() }()

	client := linkace.NewClient(cfg.LinkAceBaseURL, cfg.LinkAceAPIKey, cfg.HTTPTimeout, log)
	links, err := client.FetchRecent(context.Background(), cfg.ListID)
	if err != nil {
		return err
	}

	if len(links) == 0 {
		fmt.Println("No links found for this week")
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintLinks(links)
	return nil
}
