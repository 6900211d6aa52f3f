package pipeline

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/nba-probs/internal/models"
)

// ErrNoGamesProcessed indicates that every game in a batch failed.
var ErrNoGamesProcessed = errors.New("no games were successfully processed")

// EventsFetcher supplies play-by-play events for a game.
type EventsFetcher interface {
	FetchPlayByPlay(ctx context.Context, gameID string) ([]models.PlayEvent, error)
}

// ProgressFunc is invoked after each game, successful or not. It is an
// observability hook only and never affects the result.
type ProgressFunc func(done, total int, gameID string)

// BatchService drives the minute aggregator across many games, strictly
// sequentially, tolerating per-game failures.
type BatchService struct {
	source EventsFetcher
	logger *logrus.Logger
}

// NewBatchService creates a new batch service
func NewBatchService(source EventsFetcher, logger *logrus.Logger) *BatchService {
	return &BatchService{source: source, logger: logger}
}

// FetchAndSummarize downloads and summarizes each game in input order and
// returns the row-wise concatenation of all successful games. A game that
// fails to fetch or aggregate is logged and skipped; only a batch in which
// zero games succeed returns an error.
func (s *BatchService) FetchAndSummarize(ctx context.Context, gameIDs []string, progress ProgressFunc) ([]models.GameMinute, error) {
	runID := uuid.New()
	log := s.logger.WithFields(logrus.Fields{"run_id": runID, "games": len(gameIDs)})
	log.Info("Starting play-by-play batch")

	var rows []models.GameMinute
	succeeded := 0
	for i, gameID := range gameIDs {
		minutes, err := s.processGame(ctx, gameID)
		if err != nil {
			GamesFailedTotal.Inc()
			log.WithFields(logrus.Fields{"game_id": gameID, "error": err}).Warn("Skipping game")
		} else {
			succeeded++
			GamesProcessedTotal.Inc()
			MinutesEmittedTotal.Add(float64(len(minutes)))
			rows = append(rows, minutes...)
		}
		if progress != nil {
			progress(i+1, len(gameIDs), gameID)
		}
	}

	if succeeded == 0 {
		return nil, ErrNoGamesProcessed
	}

	log.WithFields(logrus.Fields{"succeeded": succeeded, "rows": len(rows)}).Info("Batch complete")
	return rows, nil
}

func (s *BatchService) processGame(ctx context.Context, gameID string) ([]models.GameMinute, error) {
	events, err := s.source.FetchPlayByPlay(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return Summarize(events)
}
