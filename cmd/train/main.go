// Package main provides the CLI for training the baseline win-probability
// model on a per-minute dataset.
package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/nba-probs/internal/config"
	"github.com/yourusername/nba-probs/internal/dataset"
	"github.com/yourusername/nba-probs/internal/logger"
	"github.com/yourusername/nba-probs/internal/modeling"
)

var (
	inputPath  string
	outputPath string
	envFile    string
	seed       int64
)

func init() {
	rootCmd.Flags().StringVar(&inputPath, "input", "", "Per-minute Parquet dataset (default: <processed dir>/minutes.parquet)")
	rootCmd.Flags().StringVar(&outputPath, "output", "", "Path for the model artifacts (default: <models dir>/baseline_model.json)")
	rootCmd.Flags().StringVar(&envFile, "env-file", "", "Optional dotenv file to load settings from")
	rootCmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for the train/test split")
}

var rootCmd = &cobra.Command{
	Use:          "train",
	Short:        "Train the baseline win-probability model",
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
	appLogger := logger.NewLogger(settings.LogLevel)

	input := inputPath
	if input == "" {
		input = filepath.Join(settings.Paths.ProcessedDataDir, dataset.DefaultFilename)
	}
	rows, err := dataset.Read(input)
	if err != nil {
		return err
	}

	artifacts, err := modeling.Train(rows, modeling.TrainConfig{Seed: seed})
	if err != nil {
		return err
	}

	output := outputPath
	if output == "" {
		output = filepath.Join(settings.Paths.ModelsDir, modeling.DefaultArtifactsFilename)
	}
	if err := artifacts.Save(output); err != nil {
		return err
	}

	appLogger.WithFields(logrus.Fields{
		"model_id":   artifacts.ID,
		"train_rows": artifacts.TrainRows,
		"test_rows":  artifacts.TestRows,
	}).Info("Model trained")

	fmt.Printf("Trained on %d rows, evaluated on %d rows\n", artifacts.TrainRows, artifacts.TestRows)
	fmt.Printf("Brier score: %.4f\n", artifacts.Brier)
	fmt.Printf("ROC-AUC:     %.4f\n", artifacts.ROCAUC)
	fmt.Printf("Saved model to %s\n", output)
	return nil
}
