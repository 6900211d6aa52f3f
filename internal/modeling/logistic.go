// Package modeling trains and applies the baseline win-probability model: a
// logistic regression over score margin and seconds remaining.
package modeling

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/nba-probs/internal/models"
)

// Feature columns, in model weight order (after the bias term).
var Features = []string{"score_margin", "seconds_remaining"}

const (
	defaultIterations   = 2000
	defaultLearningRate = 0.5
	defaultTestFraction = 0.2
	defaultSeed         = 42
)

// TrainConfig controls the training run. The zero value selects defaults.
type TrainConfig struct {
	TestFraction float64
	Seed         int64
	Iterations   int
	LearningRate float64
}

func (c TrainConfig) withDefaults() TrainConfig {
	if c.TestFraction <= 0 || c.TestFraction >= 1 {
		c.TestFraction = defaultTestFraction
	}
	if c.Seed == 0 {
		c.Seed = defaultSeed
	}
	if c.Iterations <= 0 {
		c.Iterations = defaultIterations
	}
	if c.LearningRate <= 0 {
		c.LearningRate = defaultLearningRate
	}
	return c
}

// Train fits a logistic regression on the per-minute dataset and evaluates it
// on a held-out, stratified test split. Features are standardized before
// gradient descent; the standardization parameters travel with the artifacts
// so inference sees the same transform.
func Train(rows []models.GameMinute, cfg TrainConfig) (*Artifacts, error) {
	cfg = cfg.withDefaults()

	if len(rows) == 0 {
		return nil, models.NewValidationError("empty_training_data", "no rows available for training")
	}

	features := make([][2]float64, len(rows))
	labels := make([]float64, len(rows))
	positives := 0
	for i, row := range rows {
		features[i] = [2]float64{float64(row.ScoreMargin), float64(row.SecondsRemaining)}
		labels[i] = float64(row.HomeWin)
		if row.HomeWin == 1 {
			positives++
		}
	}
	if positives == 0 || positives == len(rows) {
		return nil, models.NewValidationError("single_class", "training data contains a single outcome class")
	}

	trainIdx, testIdx := stratifiedSplit(labels, cfg.TestFraction, cfg.Seed)

	means, stds := standardization(features, trainIdx)
	weights := fit(features, labels, trainIdx, means, stds, cfg)

	testProbs := make([]float64, len(testIdx))
	testLabels := make([]float64, len(testIdx))
	for i, idx := range testIdx {
		testProbs[i] = probability(weights, standardize(features[idx], means, stds))
		testLabels[i] = labels[idx]
	}

	return &Artifacts{
		ID:        uuid.New(),
		Features:  Features,
		Weights:   weights,
		Means:     means,
		Stds:      stds,
		Brier:     brierScore(testLabels, testProbs),
		ROCAUC:    rocAUC(testLabels, testProbs),
		TrainRows: len(trainIdx),
		TestRows:  len(testIdx),
		TrainedAt: time.Now().UTC(),
	}, nil
}

// Predict returns the probability of a home win for one game state.
func Predict(artifacts *Artifacts, scoreMargin, secondsRemaining float64) (float64, error) {
	if err := artifacts.Validate(); err != nil {
		return 0, err
	}
	x := standardize([2]float64{scoreMargin, secondsRemaining}, artifacts.Means, artifacts.Stds)
	return probability(artifacts.Weights, x), nil
}

// fit runs full-batch gradient descent on the log-loss.
func fit(features [][2]float64, labels []float64, trainIdx []int, means, stds []float64, cfg TrainConfig) []float64 {
	weights := make([]float64, len(Features)+1) // bias first
	n := float64(len(trainIdx))

	for iter := 0; iter < cfg.Iterations; iter++ {
		grad := make([]float64, len(weights))
		for _, idx := range trainIdx {
			x := standardize(features[idx], means, stds)
			err := probability(weights, x) - labels[idx]
			grad[0] += err
			grad[1] += err * x[0]
			grad[2] += err * x[1]
		}
		for k := range weights {
			weights[k] -= cfg.LearningRate * grad[k] / n
		}
	}
	return weights
}

// stratifiedSplit shuffles each class independently and carves off the test
// fraction per class, so both splits see both outcomes.
func stratifiedSplit(labels []float64, testFraction float64, seed int64) (train, test []int) {
	rng := rand.New(rand.NewSource(seed))

	byClass := map[float64][]int{}
	for i, y := range labels {
		byClass[y] = append(byClass[y], i)
	}

	for _, class := range []float64{0, 1} {
		idx := byClass[class]
		rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

		cut := int(math.Round(testFraction * float64(len(idx))))
		if cut == 0 && len(idx) > 1 {
			cut = 1
		}
		test = append(test, idx[:cut]...)
		train = append(train, idx[cut:]...)
	}
	return train, test
}

func standardization(features [][2]float64, trainIdx []int) (means, stds []float64) {
	means = make([]float64, 2)
	stds = make([]float64, 2)
	n := float64(len(trainIdx))

	for _, idx := range trainIdx {
		means[0] += features[idx][0]
		means[1] += features[idx][1]
	}
	means[0] /= n
	means[1] /= n

	for _, idx := range trainIdx {
		stds[0] += (features[idx][0] - means[0]) * (features[idx][0] - means[0])
		stds[1] += (features[idx][1] - means[1]) * (features[idx][1] - means[1])
	}
	for k := range stds {
		stds[k] = math.Sqrt(stds[k] / n)
		if stds[k] == 0 {
			stds[k] = 1
		}
	}
	return means, stds
}

func standardize(x [2]float64, means, stds []float64) [2]float64 {
	return [2]float64{
		(x[0] - means[0]) / stds[0],
		(x[1] - means[1]) / stds[1],
	}
}

func probability(weights []float64, x [2]float64) float64 {
	return sigmoid(weights[0] + weights[1]*x[0] + weights[2]*x[1])
}

func sigmoid(z float64) float64 {
	if z > 20 {
		return 1.0
	}
	if z < -20 {
		return 0.0
	}
	return 1.0 / (1.0 + math.Exp(-z))
}
