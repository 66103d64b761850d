package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rakhadian/sportsday/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo catalog into an empty database. A database
// that already has events is left untouched.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM events`); err != nil {
		return fmt.Errorf("count events for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, e := range memory.SeedEvents() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO events (id, name, is_team_game)
VALUES (:id, :name, :is_team_game)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":           e.ID,
			"name":         e.Name,
			"is_team_game": e.Kind.IsTeam(),
		})
		if err != nil {
			return fmt.Errorf("bind seed event %d query: %w", e.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed event %d: %w", e.ID, err)
		}
	}

	for _, t := range memory.SeedTeams() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO teams (id, name)
VALUES (:id, :name)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":   t.ID,
			"name": t.Name,
		})
		if err != nil {
			return fmt.Errorf("bind seed team %d query: %w", t.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed team %d: %w", t.ID, err)
		}
	}

	for _, p := range memory.SeedPlayers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO players (id, name, team_id)
VALUES (:id, :name, :team_id)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":      p.ID,
			"name":    p.Name,
			"team_id": p.TeamID,
		})
		if err != nil {
			return fmt.Errorf("bind seed player %d query: %w", p.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed player %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
