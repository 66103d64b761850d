package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rakhadian/sportsday/internal/domain/event"
	"github.com/rakhadian/sportsday/internal/domain/result"
)

// RecordResultsInput carries the podium identifiers for one event. The
// event's stored kind decides which half of the payload applies; a zero id
// means the field was not supplied.
type RecordResultsInput struct {
	WinnerTeamID int64
	SecondTeamID int64

	FirstPlayerID  int64
	SecondPlayerID int64
	ThirdPlayerID  int64
}

// ResultService replaces an event's result set and assigns the MVP flag.
// Both operations are single transactions in the repository; retrying with
// the same payload yields the same stored rows.
type ResultService struct {
	eventRepo  event.Repository
	resultRepo result.Repository
}

func NewResultService(eventRepo event.Repository, resultRepo result.Repository) *ResultService {
	return &ResultService{
		eventRepo:  eventRepo,
		resultRepo: resultRepo,
	}
}

// RecordResults validates the payload against the event's stored kind and
// atomically replaces the event's podium. Points always come from the fixed
// point tables, never from the client. Replacing individual results clears
// any previous MVP flag; it has to be re-set with SetMVP.
func (s *ResultService) RecordResults(ctx context.Context, eventID int64, in RecordResultsInput) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.RecordResults")
	defer span.End()

	ev, err := s.getEvent(ctx, eventID)
	if err != nil {
		return err
	}

	switch ev.Kind {
	case event.KindTeam:
		return s.recordTeamResults(ctx, ev.ID, in)
	case event.KindIndividual:
		return s.recordIndividualResults(ctx, ev.ID, in)
	default:
		return fmt.Errorf("event %d has unsupported kind %q", ev.ID, ev.Kind)
	}
}

func (s *ResultService) recordTeamResults(ctx context.Context, eventID int64, in RecordResultsInput) error {
	if in.WinnerTeamID <= 0 || in.SecondTeamID <= 0 {
		return fmt.Errorf("%w: winnerTeamId and secondTeamId are required for team events", ErrInvalidInput)
	}
	if in.WinnerTeamID == in.SecondTeamID {
		return fmt.Errorf("%w: winner and second team must be distinct", ErrInvalidInput)
	}

	rows := []result.TeamResult{
		{EventID: eventID, TeamID: in.WinnerTeamID, Position: 1, Points: result.TeamPointsByPosition[1]},
		{EventID: eventID, TeamID: in.SecondTeamID, Position: 2, Points: result.TeamPointsByPosition[2]},
	}
	if err := s.resultRepo.ReplaceTeamResults(ctx, eventID, rows); err != nil {
		return fmt.Errorf("replace team results for event %d: %w", eventID, err)
	}

	return nil
}

func (s *ResultService) recordIndividualResults(ctx context.Context, eventID int64, in RecordResultsInput) error {
	ids := []int64{in.FirstPlayerID, in.SecondPlayerID, in.ThirdPlayerID}
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return fmt.Errorf("%w: firstPlayerId, secondPlayerId and thirdPlayerId are required for individual events", ErrInvalidInput)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: podium players must be distinct", ErrInvalidInput)
		}
		seen[id] = struct{}{}
	}

	rows := make([]result.IndividualResult, 0, result.IndividualPodiumSize)
	for i, id := range ids {
		position := i + 1
		rows = append(rows, result.IndividualResult{
			EventID:  eventID,
			PlayerID: id,
			Position: position,
			Points:   result.IndividualPointsByPosition[position],
		})
	}
	if err := s.resultRepo.ReplaceIndividualResults(ctx, eventID, rows); err != nil {
		return fmt.Errorf("replace individual results for event %d: %w", eventID, err)
	}

	return nil
}

// SetMVP marks exactly one player as MVP within one individual event. The
// target must already hold a result row for the event; the repository rolls
// the whole operation back otherwise.
func (s *ResultService) SetMVP(ctx context.Context, eventID, playerID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.SetMVP")
	defer span.End()

	if playerID <= 0 {
		return fmt.Errorf("%w: playerId is required", ErrInvalidInput)
	}

	ev, err := s.getEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if ev.Kind != event.KindIndividual {
		return fmt.Errorf("%w: MVP not applicable to team games", ErrInvalidInput)
	}

	if err := s.resultRepo.SetMVP(ctx, ev.ID, playerID); err != nil {
		if errors.Is(err, result.ErrNoResultForPlayer) {
			return fmt.Errorf("%w: player %d has no result for event %d", ErrInvalidInput, playerID, ev.ID)
		}
		return fmt.Errorf("set mvp for event %d: %w", ev.ID, err)
	}

	return nil
}

func (s *ResultService) getEvent(ctx context.Context, eventID int64) (event.Event, error) {
	if eventID <= 0 {
		return event.Event{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	ev, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return event.Event{}, fmt.Errorf("get event %d: %w", eventID, err)
	}
	if !exists {
		return event.Event{}, fmt.Errorf("%w: event=%d", ErrNotFound, eventID)
	}

	return ev, nil
}
