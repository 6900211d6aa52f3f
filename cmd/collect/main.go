// Package main provides the CLI for downloading historical NBA play-by-play
// data and summarizing it by minute.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yourusername/nba-probs/internal/config"
	"github.com/yourusername/nba-probs/internal/dataset"
	"github.com/yourusername/nba-probs/internal/logger"
	"github.com/yourusername/nba-probs/internal/nba"
	"github.com/yourusername/nba-probs/internal/pipeline"
	"github.com/yourusername/nba-probs/internal/repository"
)

var (
	outputPath string
	noProgress bool
	envFile    string
)

func init() {
	rootCmd.Flags().StringVar(&outputPath, "output", "", "Path for the concatenated dataset (default: <processed dir>/minutes.parquet)")
	rootCmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the progress indicator")
	rootCmd.Flags().StringVar(&envFile, "env-file", "", "Optional dotenv file to load settings from")
}

var rootCmd = &cobra.Command{
	Use:          "collect GAME_ID...",
	Short:        "Download NBA games and summarize by minute",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(cmd *cobra.Command, gameIDs []string) error {
	settings, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	appLogger := logger.NewLogger(settings.LogLevel)

	client := nba.NewClient(appLogger)
	defer client.Close()

	var progress pipeline.ProgressFunc
	if !noProgress {
		progress = func(done, total int, gameID string) {
			fmt.Fprintf(os.Stderr, "\rDownloading games %d/%d (%s)", done, total, gameID)
			if done == total {
				fmt.Fprintln(os.Stderr)
			}
		}
	}

	service := pipeline.NewBatchService(client, appLogger)
	rows, err := service.FetchAndSummarize(cmd.Context(), gameIDs, progress)
	if err != nil {
		return err
	}

	path := outputPath
	if path == "" {
		path = filepath.Join(settings.Paths.ProcessedDataDir, dataset.DefaultFilename)
	}
	if err := dataset.Write(path, rows); err != nil {
		return err
	}

	if settings.HasDatabase() {
		repo, err := repository.NewMinuteRepository(cmd.Context(), settings.DatabaseDSN)
		if err != nil {
			return err
		}
		defer repo.Close()
		saved, err := repo.SaveBatch(cmd.Context(), rows)
		if err != nil {
			return err
		}
		appLogger.WithField("rows", saved).Info("Dataset stored in Postgres")
	}

	fmt.Printf("Saved %d rows to %s\n", len(rows), path)
	return nil
}
