package modeling

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/nba-probs/internal/models"
)

// syntheticRows builds a dataset where a positive margin strongly predicts a
// home win, with noise so neither class is perfectly separable.
func syntheticRows(n int, seed int64) []models.GameMinute {
	rng := rand.New(rand.NewSource(seed))
	rows := make([]models.GameMinute, n)
	for i := range rows {
		margin := rng.Intn(41) - 20
		seconds := rng.Intn(2880)

		homeWin := 0
		if float64(margin)+rng.NormFloat64()*4 > 0 {
			homeWin = 1
		}
		rows[i] = models.GameMinute{
			GameID:           "synthetic",
			ScoreMargin:      margin,
			SecondsRemaining: seconds,
			HomeWin:          homeWin,
		}
	}
	return rows
}

func TestTrainLearnsMarginSignal(t *testing.T) {
	artifacts, err := Train(syntheticRows(600, 7), TrainConfig{})
	require.NoError(t, err)

	assert.Equal(t, Features, artifacts.Features)
	assert.Len(t, artifacts.Weights, 3)
	assert.Equal(t, 600, artifacts.TrainRows+artifacts.TestRows)
	assert.NotZero(t, artifacts.ID)
	assert.False(t, artifacts.TrainedAt.IsZero())

	// a well-fit model beats the 0.25 Brier of always guessing 0.5
	assert.Less(t, artifacts.Brier, 0.2)
	assert.Greater(t, artifacts.ROCAUC, 0.8)

	// probability must be monotone in margin at fixed seconds remaining
	prev := -1.0
	for _, margin := range []float64{-20, -10, 0, 10, 20} {
		p, err := Predict(artifacts, margin, 600)
		require.NoError(t, err)
		assert.Greater(t, p, prev)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
		prev = p
	}
}

func TestTrainIsDeterministicForSeed(t *testing.T) {
	rows := syntheticRows(200, 3)

	first, err := Train(rows, TrainConfig{Seed: 99})
	require.NoError(t, err)
	second, err := Train(rows, TrainConfig{Seed: 99})
	require.NoError(t, err)

	assert.Equal(t, first.Weights, second.Weights)
	assert.Equal(t, first.Brier, second.Brier)
	assert.Equal(t, first.ROCAUC, second.ROCAUC)
}

func TestTrainRejectsEmptyData(t *testing.T) {
	_, err := Train(nil, TrainConfig{})

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "empty_training_data", validationErr.Code)
}

func TestTrainRejectsSingleClass(t *testing.T) {
	rows := make([]models.GameMinute, 50)
	for i := range rows {
		rows[i] = models.GameMinute{ScoreMargin: i, HomeWin: 1}
	}

	_, err := Train(rows, TrainConfig{})

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "single_class", validationErr.Code)
}

func TestArtifactsRoundtrip(t *testing.T) {
	artifacts, err := Train(syntheticRows(200, 11), TrainConfig{})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "models", DefaultArtifactsFilename)
	require.NoError(t, artifacts.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, artifacts.ID, loaded.ID)
	assert.Equal(t, artifacts.Weights, loaded.Weights)
	assert.Equal(t, artifacts.Means, loaded.Means)
	assert.Equal(t, artifacts.Stds, loaded.Stds)

	want, err := Predict(artifacts, 5, 1200)
	require.NoError(t, err)
	got, err := Predict(loaded, 5, 1200)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)
}

func TestLoadRejectsInconsistentArtifacts(t *testing.T) {
	bad := &Artifacts{
		Features: Features,
		Weights:  []float64{0.1}, // wrong arity
		Means:    []float64{0, 0},
		Stds:     []float64{1, 1},
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, bad.Save(path))

	_, err := Load(path)

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "bad_artifacts", validationErr.Code)
}

func TestPredictRejectsNilArtifacts(t *testing.T) {
	_, err := Predict(nil, 0, 0)
	require.Error(t, err)
}

func TestBrierScore(t *testing.T) {
	assert.InDelta(t, 0.0, brierScore([]float64{1, 0}, []float64{1, 0}), 1e-12)
	assert.InDelta(t, 0.25, brierScore([]float64{1, 0}, []float64{0.5, 0.5}), 1e-12)
	assert.InDelta(t, 1.0, brierScore([]float64{1, 0}, []float64{0, 1}), 1e-12)
}

func TestROCAUC(t *testing.T) {
	// perfect ranking
	assert.InDelta(t, 1.0, rocAUC([]float64{0, 0, 1, 1}, []float64{0.1, 0.2, 0.8, 0.9}), 1e-12)
	// inverted ranking
	assert.InDelta(t, 0.0, rocAUC([]float64{0, 0, 1, 1}, []float64{0.9, 0.8, 0.2, 0.1}), 1e-12)
	// all scores tied collapses to chance
	assert.InDelta(t, 0.5, rocAUC([]float64{0, 1}, []float64{0.5, 0.5}), 1e-12)
}
