// Package main is the entry point for the rpg-dm command.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-dm",
	Short: "AI Dungeon Master",
	Long:  `rpg-dm runs turn-based narrative adventures with an AI narrator, falling back to scripted content when no API key is configured.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(playCmd)
}
