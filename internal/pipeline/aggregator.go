// Package pipeline turns raw NBA play-by-play event streams into regular
// per-minute game summaries suitable for model training.
package pipeline

import (
	"sort"

	"github.com/yourusername/nba-probs/internal/models"
)

const (
	regulationPeriodSeconds = 12 * 60
	overtimePeriodSeconds   = 5 * 60
	regulationPeriods       = 4
)

// periodLength returns the nominal length of a period in seconds.
func periodLength(period int) int {
	if period <= regulationPeriods {
		return regulationPeriodSeconds
	}
	return overtimePeriodSeconds
}

// minuteKey identifies one output row during deduplication.
type minuteKey struct {
	gameID string
	minute int
}

// Summarize converts the play-by-play events of a single game into one-minute
// summaries. Events are grouped by period and re-ordered chronologically
// (most clock remaining first) before bucketing, so duplicate and out-of-order
// input is tolerated. When several events land in the same minute the
// chronologically last one wins.
//
// The minute index uses a fixed 12-minute width for the period offset even in
// overtime, and SecondsRemaining falls back to the raw period clock for
// periods beyond regulation. See models.GameMinute.
func Summarize(events []models.PlayEvent) ([]models.GameMinute, error) {
	if len(events) == 0 {
		return nil, models.ErrNoEvents
	}

	byPeriod := make(map[int][]models.PlayEvent)
	periods := make([]int, 0, 8)
	for _, ev := range events {
		if _, seen := byPeriod[ev.Period]; !seen {
			periods = append(periods, ev.Period)
		}
		byPeriod[ev.Period] = append(byPeriod[ev.Period], ev)
	}
	sort.Ints(periods)

	candidates := make([]models.GameMinute, 0, len(events))
	for _, period := range periods {
		group := byPeriod[period]
		// Stable sort keeps input order for equal clocks.
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Clock > group[j].Clock
		})

		nominal := periodLength(period)
		for _, ev := range group {
			clockSeconds := ev.ClockSeconds()
			elapsed := nominal - clockSeconds

			secondsRemaining := clockSeconds
			if period <= regulationPeriods {
				secondsRemaining += (regulationPeriods - period) * regulationPeriodSeconds
			}

			candidates = append(candidates, models.GameMinute{
				GameID:           ev.GameID,
				MinuteIndex:      elapsed/60 + (period-1)*12,
				Period:           period,
				SecondsRemaining: secondsRemaining,
				HomeTeamScore:    ev.HomeScore,
				AwayTeamScore:    ev.AwayScore,
				HomeTeamID:       ev.HomeTeamID,
				AwayTeamID:       ev.AwayTeamID,
				GameDate:         ev.GameDate,
				ScoreMargin:      ev.HomeScore - ev.AwayScore,
			})
		}
	}

	// Keep the last candidate per (game, minute): candidates are already in
	// chronological order, so later entries are later game states.
	kept := make(map[minuteKey]models.GameMinute, len(candidates))
	order := make([]minuteKey, 0, len(candidates))
	for _, row := range candidates {
		key := minuteKey{gameID: row.GameID, minute: row.MinuteIndex}
		if _, seen := kept[key]; !seen {
			order = append(order, key)
		}
		kept[key] = row
	}

	final := lastEvent(events)
	homeWin := 0
	if final.HomeScore > final.AwayScore {
		homeWin = 1
	}

	rows := make([]models.GameMinute, 0, len(order))
	for _, key := range order {
		row := kept[key]
		row.HomeWin = homeWin
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].MinuteIndex < rows[j].MinuteIndex
	})

	return rows, nil
}

// lastEvent returns the chronologically last event of the game: the highest
// period, then the least clock remaining, later input winning ties.
func lastEvent(events []models.PlayEvent) models.PlayEvent {
	last := events[0]
	for _, ev := range events[1:] {
		if ev.Period > last.Period || (ev.Period == last.Period && ev.Clock <= last.Clock) {
			last = ev
		}
	}
	return last
}
