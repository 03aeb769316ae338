package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/alx/weekly-news/internal/config"
	"github.com/alx/weekly-news/internal/digest"
	"github.com/alx/weekly-news/internal/hugo"
	"github.com/alx/weekly-news/internal/linkace"
	"github.com/alx/weekly-news/internal/llm"
	"github.com/alx/weekly-news/internal/logger"
	"github.com/alx/weekly-news/internal/pipeline"
	"github.com/alx/weekly-news/internal/review"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Run the full digest pipeline end-to-end",
	Long: `Fetches the past week's links, drafts the digest with the completion
service, pauses for editor review on the terminal, applies the requested
revision, and writes the Hugo content file.

Configuration comes from the environment (a .env file is honored);
command-line flags override individual values.`,
	RunE: runGenerate,
}

var (
	generateListID    int
	generateOutputDir string
	generatePrefix    string
	generateAuthor    string
	generateYes       bool
	generateVerbose   bool
)

func init() {
	generateCommand.Flags().IntVar(&generateListID, "list-id", 0, "LinkAce list ID to fetch (default from TARGET_LIST_ID)")
	generateCommand.Flags().StringVar(&generateOutputDir, "output-dir", "", "Hugo content directory (default from HUGO_CONTENT_PATH)")
	generateCommand.Flags().StringVar(&generatePrefix, "prefix", "", "Output filename prefix (default from OUTPUT_FILENAME_PREFIX)")
	generateCommand.Flags().StringVar(&generateAuthor, "author", "", "Front-matter author (default from EDITOR_NAME)")
	generateCommand.Flags().BoolVarP(&generateYes, "yes", "y", false, "Skip editor review and approve the draft as-is")
	generateCommand.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print link and digest previews")

	rootCmd.AddCommand(generateCommand)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	// Flags take priority over environment values.
	if cmd.Flags().Changed("list-id") {
		cfg.ListID = generateListID
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.ContentPath = generateOutputDir
	}
	if cmd.Flags().Changed("prefix") {
		cfg.Prefix = generatePrefix
	}
	if cmd.Flags().Changed("author") {
		cfg.EditorName = generateAuthor
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	level := "info"
	if generateVerbose {
		level = "debug"
	}
	log := logger.New(level, true)
	defer func() { _ = log.Sync() }()

	var reviewer review.Reviewer = review.NewTerminalReviewer(os.Stdin, os.Stdout)
	if generateYes {
		reviewer = review.AutoApprove{}
	}

	completions := llm.NewOpenRouterClient(cfg.OpenRouterBaseURL, cfg.OpenRouterAPIKey, cfg.OpenRouterModel, cfg.HTTPTimeout, log)

	return pipeline.Run(context.Background(), pipeline.Options{
		ListID:   cfg.ListID,
		Source:   linkace.NewClient(cfg.LinkAceBaseURL, cfg.LinkAceAPIKey, cfg.HTTPTimeout, log),
		Composer: digest.NewComposer(completions),
		Reviewer: reviewer,
		Writer:   hugo.NewWriter(cfg.ContentPath, cfg.Prefix, cfg.EditorName, log),
		Log:      log,
		Verbose:  generateVerbose,
	})
}
