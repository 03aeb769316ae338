package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print the weekly_news version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("weekly_news %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCommand)
}
