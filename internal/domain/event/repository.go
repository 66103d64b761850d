package event

import "context"

type Repository interface {
	List(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, eventID int64) (Event, bool, error)
}
