package result

import "context"

// Repository describes result persistence needs from use cases.
//
// Replace methods swap an event's entire result set in a single transaction:
// existing rows are deleted and the new podium inserted atomically, so a
// reader observes either the previous complete result or the new one, never
// a partial state. SetMVP clears and reassigns the MVP flag within one
// transaction and returns ErrNoResultForPlayer when the target player has no
// result row for the event.
type Repository interface {
	ListTeamResults(ctx context.Context) ([]TeamResult, error)
	ListIndividualResults(ctx context.Context) ([]IndividualResult, error)
	ReplaceTeamResults(ctx context.Context, eventID int64, rows []TeamResult) error
	ReplaceIndividualResults(ctx context.Context, eventID int64, rows []IndividualResult) error
	SetMVP(ctx context.Context, eventID, playerID int64) error
}
