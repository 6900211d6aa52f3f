// Package snapshot captures point-in-time orderbook records for later
// comparison against model probabilities.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/yourusername/nba-probs/internal/models"
)

// Record is one captured orderbook snapshot. Prices and implied probabilities
// stay null when the market did not quote a side.
type Record struct {
	MarketID              string   `json:"market_id"`
	Timestamp             string   `json:"timestamp"` // UTC ISO-8601
	YesPrice              *float64 `json:"yes_price"`
	NoPrice               *float64 `json:"no_price"`
	ImpliedYesProbability *float64 `json:"implied_yes_probability"`
	ImpliedNoProbability  *float64 `json:"implied_no_probability"`
}

// NewRecord builds a snapshot record from an orderbook, stamped at the given
// capture time.
func NewRecord(orderbook *models.Orderbook, capturedAt time.Time) Record {
	return Record{
		MarketID:              orderbook.MarketID,
		Timestamp:             capturedAt.UTC().Format(time.RFC3339),
		YesPrice:              orderbook.YesPrice,
		NoPrice:               orderbook.NoPrice,
		ImpliedYesProbability: orderbook.ImpliedYesProbability(),
		ImpliedNoProbability:  orderbook.ImpliedNoProbability(),
	}
}

// Append reads the JSON array at path (an absent file counts as empty),
// appends the record, and rewrites the array via a temp file and atomic
// rename. A crash mid-write therefore never leaves a truncated or garbled
// file. A corrupt existing file is an error, not something to overwrite.
func Append(path string, record Record) (int, error) {
	var records []Record

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &records); err != nil {
			return 0, fmt.Errorf("existing snapshot file %s is not a JSON array: %w", path, err)
		}
	case os.IsNotExist(err):
		// first snapshot for this path
	default:
		return 0, fmt.Errorf("failed to read snapshot file %s: %w", path, err)
	}

	records = append(records, record)

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to marshal snapshots: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*.json")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("failed to write snapshots: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, fmt.Errorf("failed to replace snapshot file: %w", err)
	}

	return len(records), nil
}
