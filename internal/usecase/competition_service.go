package usecase

import (
	"context"
	"fmt"

	"github.com/rakhadian/sportsday/internal/domain/event"
	"github.com/rakhadian/sportsday/internal/domain/player"
	"github.com/rakhadian/sportsday/internal/domain/team"
)

// CompetitionService serves the seeded catalog: events, teams and players.
type CompetitionService struct {
	eventRepo  event.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
}

func NewCompetitionService(eventRepo event.Repository, teamRepo team.Repository, playerRepo player.Repository) *CompetitionService {
	return &CompetitionService{
		eventRepo:  eventRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

func (s *CompetitionService) ListEvents(ctx context.Context) ([]event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.ListEvents")
	defer span.End()

	items, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return items, nil
}

func (s *CompetitionService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.ListTeams")
	defer span.End()

	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return items, nil
}

func (s *CompetitionService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.ListPlayers")
	defer span.End()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return items, nil
}
