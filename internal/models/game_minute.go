package models

import "time"

// GameMinute is the per-minute summary derived from play-by-play events. One
// row exists per (game, minute index) pair and carries the score state at the
// end of that minute.
//
// MinuteIndex is zero-based and continuous across periods. Regulation periods
// are assumed to be exactly 12 elapsed minutes, so period p contributes
// indices [(p-1)*12, p*12). Overtime periods reuse the same fixed-width offset
// even though they only run 5 minutes; SecondsRemaining is likewise only a
// true whole-game value for periods 1-4. Both quirks are intentional and
// mirror the upstream dataset definition.
type GameMinute struct {
	GameID           string     `parquet:"game_id" json:"game_id" db:"game_id"`
	MinuteIndex      int        `parquet:"minute_index" json:"minute_index" db:"minute_index"`
	Period           int        `parquet:"period" json:"period" db:"period"`
	SecondsRemaining int        `parquet:"seconds_remaining" json:"seconds_remaining" db:"seconds_remaining"`
	HomeTeamScore    int        `parquet:"home_team_score" json:"home_team_score" db:"home_team_score"`
	AwayTeamScore    int        `parquet:"away_team_score" json:"away_team_score" db:"away_team_score"`
	HomeTeamID       int64      `parquet:"home_team_id" json:"home_team_id" db:"home_team_id"`
	AwayTeamID       int64      `parquet:"away_team_id" json:"away_team_id" db:"away_team_id"`
	HomeWin          int        `parquet:"home_win" json:"home_win" db:"home_win"`
	GameDate         *time.Time `parquet:"game_date,optional" json:"game_date" db:"game_date"`
	ScoreMargin      int        `parquet:"score_margin" json:"score_margin" db:"score_margin"`
}
