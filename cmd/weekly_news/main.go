// Package main provides the entry point for the weekly links digest CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "weekly_news",
	Short: "Weekly links digest generator",
	Long:  "Weekly News fetches the past week's bookmarks from a LinkAce list, synthesizes them into a narrative digest with an LLM, and writes the result as a Hugo content file.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
