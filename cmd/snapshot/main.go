// Package main provides the CLI for capturing Polymarket orderbook snapshots.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/nba-probs/internal/config"
	"github.com/yourusername/nba-probs/internal/polymarket"
	"github.com/yourusername/nba-probs/internal/snapshot"
)

var (
	outputPath string
	envFile    string
)

func init() {
	rootCmd.Flags().StringVar(&outputPath, "output", "", "JSON file to append the snapshot to (relative paths resolve under the snapshot dir)")
	rootCmd.Flags().StringVar(&envFile, "env-file", "", "Optional dotenv file to load settings from")
}

var rootCmd = &cobra.Command{
	Use:          "snapshot MARKET_ID",
	Short:        "Capture a Polymarket orderbook snapshot",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	marketID := args[0]

	settings, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	client := polymarket.NewClient(settings)
	orderbook, err := client.FetchOrderbook(cmd.Context(), marketID)
	if err != nil {
		return err
	}

	record := snapshot.NewRecord(orderbook, time.Now())

	if outputPath == "" {
		out, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	path := outputPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(settings.Paths.PolymarketDir, path)
	}
	count, err := snapshot.Append(path, record)
	if err != nil {
		return err
	}

	fmt.Printf("Snapshot appended to %s (%d records)\n", path, count)
	return nil
}
