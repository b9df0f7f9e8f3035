// Package main is the entry point for the grimoire-api server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "grimoire-api",
	Short: "Grimoire API server",
	Long:  `Grimoire API provides the rules-derivation backend for spell authoring, character sheets, apotheosis rituals, and currency.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(seedCmd)
}
