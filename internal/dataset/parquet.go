// Package dataset persists per-minute game summaries as Parquet.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"github.com/yourusername/nba-probs/internal/models"
)

// DefaultFilename is the processed dataset file written by the collector.
const DefaultFilename = "minutes.parquet"

// Write stores the per-minute rows at path, creating parent directories as
// needed. The file is written to a temporary name and renamed into place so a
// failed run never leaves a truncated dataset behind.
func Write(path string, rows []models.GameMinute) error {
	if len(rows) == 0 {
		return models.NewValidationError("empty_dataset", "refusing to write a dataset with zero rows")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".minutes-*.parquet")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	writer := parquet.NewGenericWriter[models.GameMinute](tmp)
	if _, err := writer.Write(rows); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	return os.Rename(tmp.Name(), path)
}

// Read loads a previously written per-minute dataset.
func Read(path string) ([]models.GameMinute, error) {
	rows, err := parquet.ReadFile[models.GameMinute](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet file %s: %w", path, err)
	}
	return rows, nil
}
