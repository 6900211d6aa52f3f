package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// PlayEvent represents a single recorded play from an NBA play-by-play feed.
// Events arrive per game and are not guaranteed to be in chronological order.
type PlayEvent struct {
	GameID     string        `json:"game_id"`
	Period     int           `json:"period"` // 1-4 regulation, 5+ overtime
	Clock      time.Duration `json:"clock"`  // time remaining in the period
	HomeScore  int           `json:"home_score"`
	AwayScore  int           `json:"away_score"`
	HomeTeamID int64         `json:"home_team_id"`
	AwayTeamID int64         `json:"away_team_id"`
	GameDate   *time.Time    `json:"game_date,omitempty"`
}

// ClockSeconds returns the remaining period time in whole seconds, truncated.
func (e *PlayEvent) ClockSeconds() int {
	return int(e.Clock.Seconds())
}

// ParseClock parses a game clock string into the remaining period time.
// The stats API emits two formats depending on endpoint version:
// ISO-8601 durations ("PT11M59.00S") and plain minute:second ("11:59").
func ParseClock(raw string) (time.Duration, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, NewValidationError("empty_clock", "play event has an empty game clock")
	}

	if strings.HasPrefix(s, "PT") {
		return parseISOClock(s)
	}
	return parseColonClock(s)
}

// parseISOClock handles the "PT11M59.00S" duration form.
func parseISOClock(s string) (time.Duration, error) {
	body := strings.TrimPrefix(s, "PT")
	var minutes, seconds float64
	var err error

	if idx := strings.IndexByte(body, 'M'); idx >= 0 {
		minutes, err = strconv.ParseFloat(body[:idx], 64)
		if err != nil {
			return 0, NewValidationError("bad_clock", fmt.Sprintf("unparseable game clock %q", s))
		}
		body = body[idx+1:]
	}
	if idx := strings.IndexByte(body, 'S'); idx >= 0 {
		seconds, err = strconv.ParseFloat(body[:idx], 64)
		if err != nil {
			return 0, NewValidationError("bad_clock", fmt.Sprintf("unparseable game clock %q", s))
		}
		body = body[idx+1:]
	}
	if body != "" {
		return 0, NewValidationError("bad_clock", fmt.Sprintf("unparseable game clock %q", s))
	}

	return clockDuration(minutes*60 + seconds), nil
}

// parseColonClock handles the "11:59" and "11:59.5" forms.
func parseColonClock(s string) (time.Duration, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, NewValidationError("bad_clock", fmt.Sprintf("unparseable game clock %q", s))
	}
	minutes, err := strconv.Atoi(parts[0])
	if err != nil || minutes < 0 {
		return 0, NewValidationError("bad_clock", fmt.Sprintf("unparseable game clock %q", s))
	}
	seconds, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || seconds < 0 || seconds >= 60 {
		return 0, NewValidationError("bad_clock", fmt.Sprintf("unparseable game clock %q", s))
	}

	return clockDuration(float64(minutes)*60 + seconds), nil
}

// clockDuration rounds to millisecond precision so fractional clock values
// survive the float conversion exactly.
func clockDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds*1000)) * time.Millisecond
}
