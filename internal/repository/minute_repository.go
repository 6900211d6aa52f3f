// Package repository provides an optional Postgres sink for the per-minute
// dataset, used alongside the Parquet output when a DSN is configured.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yourusername/nba-probs/internal/models"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS game_minutes (
    game_id           TEXT        NOT NULL,
    minute_index      INTEGER     NOT NULL,
    period            INTEGER     NOT NULL,
    seconds_remaining INTEGER     NOT NULL,
    home_team_score   INTEGER     NOT NULL,
    away_team_score   INTEGER     NOT NULL,
    home_team_id      BIGINT      NOT NULL,
    away_team_id      BIGINT      NOT NULL,
    home_win          INTEGER     NOT NULL,
    game_date         TIMESTAMPTZ,
    score_margin      INTEGER     NOT NULL,
    PRIMARY KEY (game_id, minute_index)
)`

// MinuteRepository stores per-minute rows in Postgres.
type MinuteRepository struct {
	pool *pgxpool.Pool
}

// NewMinuteRepository connects to Postgres and ensures the game_minutes
// table exists.
func NewMinuteRepository(ctx context.Context, dsn string) (*MinuteRepository, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	poolConfig.MaxConns = 4
	poolConfig.MaxConnLifetime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create game_minutes table: %w", err)
	}

	return &MinuteRepository{pool: pool}, nil
}

// SaveBatch replaces any existing rows for the batch's games and bulk-loads
// the new rows with COPY.
func (r *MinuteRepository) SaveBatch(ctx context.Context, rows []models.GameMinute) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	gameIDs := make([]string, 0, 8)
	seen := map[string]bool{}
	for _, row := range rows {
		if !seen[row.GameID] {
			seen[row.GameID] = true
			gameIDs = append(gameIDs, row.GameID)
		}
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM game_minutes WHERE game_id = ANY($1)`, gameIDs); err != nil {
		return 0, fmt.Errorf("failed to clear existing rows: %w", err)
	}

	copied, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"game_minutes"},
		[]string{
			"game_id", "minute_index", "period", "seconds_remaining",
			"home_team_score", "away_team_score", "home_team_id", "away_team_id",
			"home_win", "game_date", "score_margin",
		},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			row := rows[i]
			return []any{
				row.GameID, row.MinuteIndex, row.Period, row.SecondsRemaining,
				row.HomeTeamScore, row.AwayTeamScore, row.HomeTeamID, row.AwayTeamID,
				row.HomeWin, row.GameDate, row.ScoreMargin,
			}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to copy rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return copied, nil
}

// Close releases the connection pool.
func (r *MinuteRepository) Close() {
	r.pool.Close()
}
