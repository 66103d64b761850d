package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rakhadian/sportsday/internal/domain/result"
	qb "github.com/rakhadian/sportsday/internal/platform/querybuilder"
)

type ResultRepository struct {
	db *sqlx.DB
}

func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) ListTeamResults(ctx context.Context) ([]result.TeamResult, error) {
	query, args, err := qb.Select("event_id", "team_id", "position", "points").
		From("results_team").
		OrderBy("event_id", "position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team results query: %w", err)
	}

	var rows []teamResultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team results: %w", err)
	}

	out := make([]result.TeamResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, result.TeamResult{
			EventID:  row.EventID,
			TeamID:   row.TeamID,
			Position: row.Position,
			Points:   row.Points,
		})
	}

	return out, nil
}

func (r *ResultRepository) ListIndividualResults(ctx context.Context) ([]result.IndividualResult, error) {
	query, args, err := qb.Select("event_id", "player_id", "position", "points", "mvp").
		From("results_individual").
		OrderBy("event_id", "position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select individual results query: %w", err)
	}

	var rows []individualResultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select individual results: %w", err)
	}

	out := make([]result.IndividualResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, result.IndividualResult{
			EventID:  row.EventID,
			PlayerID: row.PlayerID,
			Position: row.Position,
			Points:   row.Points,
			MVP:      row.MVP,
		})
	}

	return out, nil
}

func (r *ResultRepository) ReplaceTeamResults(ctx context.Context, eventID int64, rows []result.TeamResult) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for team results replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteSQL, deleteArgs, err := qb.DeleteFrom("results_team").
		Where(qb.Eq("event_id", eventID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete team results query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
		return fmt.Errorf("delete team results event=%d: %w", eventID, err)
	}

	if len(rows) > 0 {
		insert := qb.InsertInto("results_team").
			Columns("event_id", "team_id", "position", "points")
		for _, row := range rows {
			insert.Values(row.EventID, row.TeamID, row.Position, row.Points)
		}
		insertSQL, insertArgs, err := insert.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert team results query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return fmt.Errorf("insert team results event=%d: %w", eventID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit team results replace tx: %w", err)
	}

	return nil
}

func (r *ResultRepository) ReplaceIndividualResults(ctx context.Context, eventID int64, rows []result.IndividualResult) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for individual results replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteSQL, deleteArgs, err := qb.DeleteFrom("results_individual").
		Where(qb.Eq("event_id", eventID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete individual results query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
		return fmt.Errorf("delete individual results event=%d: %w", eventID, err)
	}

	if len(rows) > 0 {
		insert := qb.InsertInto("results_individual").
			Columns("event_id", "player_id", "position", "points", "mvp")
		for _, row := range rows {
			insert.Values(row.EventID, row.PlayerID, row.Position, row.Points, row.MVP)
		}
		insertSQL, insertArgs, err := insert.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert individual results query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return fmt.Errorf("insert individual results event=%d: %w", eventID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit individual results replace tx: %w", err)
	}

	return nil
}

// SetMVP clears the event's MVP flag before marking the target row so the
// partial unique index on (event_id) WHERE mvp never sees two rows set.
func (r *ResultRepository) SetMVP(ctx context.Context, eventID, playerID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for mvp update: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearSQL, clearArgs, err := qb.Update("results_individual").
		Set("mvp", false).
		Where(qb.Eq("event_id", eventID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear mvp query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearSQL, clearArgs...); err != nil {
		return fmt.Errorf("clear mvp event=%d: %w", eventID, err)
	}

	setSQL, setArgs, err := qb.Update("results_individual").
		Set("mvp", true).
		Where(qb.Eq("event_id", eventID), qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set mvp query: %w", err)
	}
	res, err := tx.ExecContext(ctx, setSQL, setArgs...)
	if err != nil {
		return fmt.Errorf("set mvp event=%d player=%d: %w", eventID, playerID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("count mvp rows event=%d: %w", eventID, err)
	}
	if affected == 0 {
		return result.ErrNoResultForPlayer
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit mvp update tx: %w", err)
	}

	return nil
}
