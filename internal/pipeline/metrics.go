package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GamesProcessedTotal tracks games summarized successfully
	GamesProcessedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nba_probs_games_processed_total",
			Help: "Total number of games summarized successfully",
		},
	)

	// GamesFailedTotal tracks games skipped because fetch or aggregation failed
	GamesFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nba_probs_games_failed_total",
			Help: "Total number of games skipped due to fetch or aggregation errors",
		},
	)

	// MinutesEmittedTotal tracks per-minute rows produced
	MinutesEmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nba_probs_minutes_emitted_total",
			Help: "Total number of per-minute rows produced",
		},
	)
)
