package modeling

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/nba-probs/internal/models"
)

// DefaultArtifactsFilename is the model blob written under the models dir.
const DefaultArtifactsFilename = "baseline_model.json"

// Artifacts is everything produced by a training run: the fitted weights with
// their standardization parameters, the ordered feature names they apply to,
// and the held-out evaluation metrics.
type Artifacts struct {
	ID        uuid.UUID `json:"id"`
	Features  []string  `json:"features"`
	Weights   []float64 `json:"weights"` // bias first, then one per feature
	Means     []float64 `json:"feature_means"`
	Stds      []float64 `json:"feature_stds"`
	Brier     float64   `json:"brier"`
	ROCAUC    float64   `json:"roc_auc"`
	TrainRows int       `json:"train_rows"`
	TestRows  int       `json:"test_rows"`
	TrainedAt time.Time `json:"trained_at"`
}

// Validate checks that the artifact is structurally usable for inference.
func (a *Artifacts) Validate() error {
	if a == nil {
		return models.NewValidationError("nil_artifacts", "model artifacts are nil")
	}
	if len(a.Weights) != len(a.Features)+1 {
		return models.NewValidationError("bad_artifacts", "weight count does not match feature count")
	}
	if len(a.Means) != len(a.Features) || len(a.Stds) != len(a.Features) {
		return models.NewValidationError("bad_artifacts", "standardization parameters do not match feature count")
	}
	return nil
}

// Save writes the artifacts as a single JSON blob, creating parent
// directories as needed.
func (a *Artifacts) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create models directory: %w", err)
	}
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal model artifacts: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads artifacts previously written by Save.
func Load(path string) (*Artifacts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifacts %s: %w", path, err)
	}
	artifacts := &Artifacts{}
	if err := json.Unmarshal(data, artifacts); err != nil {
		return nil, fmt.Errorf("failed to parse model artifacts %s: %w", path, err)
	}
	if err := artifacts.Validate(); err != nil {
		return nil, err
	}
	return artifacts, nil
}
