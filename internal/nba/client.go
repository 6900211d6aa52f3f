// Package nba fetches play-by-play data from the NBA stats API.
package nba

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/nba-probs/internal/models"
)

const defaultBaseURL = "https://stats.nba.com/stats"

// The stats API rejects requests without browser-style headers.
var statsHeaders = map[string]string{
	"Referer":    "https://www.nba.com/",
	"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":     "application/json",
}

// Client fetches play-by-play event streams from stats.nba.com.
type Client struct {
	http    *RateLimitedHTTPClient
	baseURL string
	logger  *logrus.Logger
}

// NewClient creates a stats API client with default rate limiting.
func NewClient(logger *logrus.Logger) *Client {
	return NewClientWithConfig(defaultBaseURL, DefaultHTTPClientConfig(), logger)
}

// NewClientWithConfig creates a stats API client against an explicit base URL,
// mainly for tests.
func NewClientWithConfig(baseURL string, cfg HTTPClientConfig, logger *logrus.Logger) *Client {
	return &Client{
		http:    NewRateLimitedHTTPClient(cfg, nil),
		baseURL: baseURL,
		logger:  logger,
	}
}

// playByPlayResponse mirrors the playbyplayv3 payload shape.
type playByPlayResponse struct {
	Game struct {
		GameID     string       `json:"gameId"`
		GameDate   string       `json:"gameDate"`
		HomeTeamID int64        `json:"homeTeamId"`
		AwayTeamID int64        `json:"awayTeamId"`
		Actions    []playAction `json:"actions"`
	} `json:"game"`
}

type playAction struct {
	Period    int    `json:"period"`
	Clock     string `json:"clock"`
	ScoreHome string `json:"scoreHome"`
	ScoreAway string `json:"scoreAway"`
}

// FetchPlayByPlay downloads the full play-by-play stream for a game and maps
// it to PlayEvent rows. Malformed actions (missing clock or scores) fail the
// whole game; the batch layer decides whether that is fatal.
func (c *Client) FetchPlayByPlay(ctx context.Context, gameID string) ([]models.PlayEvent, error) {
	params := url.Values{}
	params.Set("GameID", gameID)
	params.Set("StartPeriod", "0")
	params.Set("EndPeriod", "14")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/playbyplayv3?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for key, value := range statsHeaders {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetch play-by-play for game %s: %w", gameID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("game %s: %w", gameID, models.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch play-by-play for game %s: unexpected status %d", gameID, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read play-by-play response: %w", err)
	}

	var payload playByPlayResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode play-by-play response: %w", err)
	}

	events, err := c.mapEvents(gameID, &payload)
	if err != nil {
		return nil, err
	}

	c.logger.WithFields(logrus.Fields{
		"game_id":  gameID,
		"events":   len(events),
		"duration": time.Since(start),
	}).Debug("Fetched play-by-play")

	return events, nil
}

func (c *Client) mapEvents(gameID string, payload *playByPlayResponse) ([]models.PlayEvent, error) {
	var gameDate *time.Time
	if payload.Game.GameDate != "" {
		parsed, err := time.Parse("2006-01-02", payload.Game.GameDate)
		if err == nil {
			gameDate = &parsed
		}
	}

	events := make([]models.PlayEvent, 0, len(payload.Game.Actions))
	for i, action := range payload.Game.Actions {
		if action.Period < 1 {
			return nil, models.NewValidationError("bad_period", fmt.Sprintf("game %s action %d has period %d", gameID, i, action.Period))
		}
		clock, err := models.ParseClock(action.Clock)
		if err != nil {
			return nil, fmt.Errorf("game %s action %d: %w", gameID, i, err)
		}
		homeScore, err := strconv.Atoi(action.ScoreHome)
		if err != nil {
			return nil, models.NewValidationError("bad_score", fmt.Sprintf("game %s action %d has home score %q", gameID, i, action.ScoreHome))
		}
		awayScore, err := strconv.Atoi(action.ScoreAway)
		if err != nil {
			return nil, models.NewValidationError("bad_score", fmt.Sprintf("game %s action %d has away score %q", gameID, i, action.ScoreAway))
		}

		events = append(events, models.PlayEvent{
			GameID:     gameID,
			Period:     action.Period,
			Clock:      clock,
			HomeScore:  homeScore,
			AwayScore:  awayScore,
			HomeTeamID: payload.Game.HomeTeamID,
			AwayTeamID: payload.Game.AwayTeamID,
			GameDate:   gameDate,
		})
	}

	return events, nil
}

// Close releases the underlying HTTP resources.
func (c *Client) Close() error {
	return c.http.Close()
}
