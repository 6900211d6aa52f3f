package modeling

import "sort"

// brierScore is the mean squared error between predicted probabilities and
// observed outcomes. Lower is better; 0.25 is the no-skill baseline.
func brierScore(labels, probs []float64) float64 {
	if len(labels) == 0 {
		return 0
	}
	var sum float64
	for i := range labels {
		diff := probs[i] - labels[i]
		sum += diff * diff
	}
	return sum / float64(len(labels))
}

// rocAUC computes the area under the ROC curve via the rank-sum formulation,
// with the midrank correction for tied scores.
func rocAUC(labels, probs []float64) float64 {
	n := len(labels)
	if n == 0 {
		return 0
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return probs[order[a]] < probs[order[b]]
	})

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && probs[order[j+1]] == probs[order[i]] {
			j++
		}
		// ranks are 1-based; ties share the mean rank of their run
		mid := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[order[k]] = mid
		}
		i = j + 1
	}

	var positives, rankSum float64
	for i := range labels {
		if labels[i] == 1 {
			positives++
			rankSum += ranks[i]
		}
	}
	negatives := float64(n) - positives
	if positives == 0 || negatives == 0 {
		return 0
	}

	return (rankSum - positives*(positives+1)/2) / (positives * negatives)
}
