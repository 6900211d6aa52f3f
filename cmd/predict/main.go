// Package main provides the CLI for scoring a single game state with a
// trained win-probability model.
package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yourusername/nba-probs/internal/config"
	"github.com/yourusername/nba-probs/internal/modeling"
)

var (
	modelPath        string
	envFile          string
	scoreMargin      float64
	secondsRemaining float64
)

func init() {
	rootCmd.Flags().StringVar(&modelPath, "model", "", "Model artifacts file (default: <models dir>/baseline_model.json)")
	rootCmd.Flags().StringVar(&envFile, "env-file", "", "Optional dotenv file to load settings from")
	rootCmd.Flags().Float64Var(&scoreMargin, "margin", 0, "Home score minus away score")
	rootCmd.Flags().Float64Var(&secondsRemaining, "seconds-remaining", 0, "Seconds remaining in the game")
	_ = rootCmd.MarkFlagRequired("margin")
	_ = rootCmd.MarkFlagRequired("seconds-remaining")
}

var rootCmd = &cobra.Command{
	Use:          "predict",
	Short:        "Estimate the home-win probability for a game state",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	path := modelPath
	if path == "" {
		path = filepath.Join(settings.Paths.ModelsDir, modeling.DefaultArtifactsFilename)
	}
	artifacts, err := modeling.Load(path)
	if err != nil {
		return err
	}

	probability, err := modeling.Predict(artifacts, scoreMargin, secondsRemaining)
	if err != nil {
		return err
	}

	fmt.Printf("Home win probability: %.4f\n", probability)
	return nil
}
