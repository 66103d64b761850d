package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rakhadian/sportsday/internal/domain/event"
	qb "github.com/rakhadian/sportsday/internal/platform/querybuilder"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) List(ctx context.Context) ([]event.Event, error) {
	query, args, err := qb.Select("id", "name", "is_team_game").
		From("events").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select events query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, event.Event{
			ID:   row.ID,
			Name: row.Name,
			Kind: kindFromTeamGame(row.IsTeamGame),
		})
	}

	return out, nil
}

func (r *EventRepository) GetByID(ctx context.Context, eventID int64) (event.Event, bool, error) {
	query, args, err := qb.Select("id", "name", "is_team_game").
		From("events").
		Where(qb.Eq("id", eventID)).
		ToSQL()
	if err != nil {
		return event.Event{}, false, fmt.Errorf("build select event query: %w", err)
	}

	var row eventTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return event.Event{}, false, nil
		}
		return event.Event{}, false, fmt.Errorf("get event: %w", err)
	}

	return event.Event{
		ID:   row.ID,
		Name: row.Name,
		Kind: kindFromTeamGame(row.IsTeamGame),
	}, true, nil
}

func kindFromTeamGame(isTeamGame bool) event.Kind {
	if isTeamGame {
		return event.KindTeam
	}
	return event.KindIndividual
}
