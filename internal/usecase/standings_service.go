package usecase

import (
	"context"
	"fmt"

	"github.com/rakhadian/sportsday/internal/domain/player"
	"github.com/rakhadian/sportsday/internal/domain/result"
	"github.com/rakhadian/sportsday/internal/domain/standings"
	"github.com/rakhadian/sportsday/internal/domain/team"
	"github.com/sourcegraph/conc/pool"
)

// StandingsService recomputes every aggregate view from the stored results
// on each call. There is no cached or incremental state, so a reader always
// sees the latest committed writes.
type StandingsService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	resultRepo result.Repository
}

func NewStandingsService(teamRepo team.Repository, playerRepo player.Repository, resultRepo result.Repository) *StandingsService {
	return &StandingsService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		resultRepo: resultRepo,
	}
}

func (s *StandingsService) TeamStandings(ctx context.Context) ([]standings.TeamTotal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.TeamStandings")
	defer span.End()

	snapshot, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	return standings.TeamTotals(snapshot), nil
}

func (s *StandingsService) RankedTeams(ctx context.Context) ([]standings.TeamRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.RankedTeams")
	defer span.End()

	snapshot, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	return standings.RankedTeams(snapshot), nil
}

func (s *StandingsService) RankedPlayers(ctx context.Context) ([]standings.PlayerRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.RankedPlayers")
	defer span.End()

	snapshot, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	return standings.RankedPlayers(snapshot), nil
}

func (s *StandingsService) MedalTable(ctx context.Context) ([]standings.MedalRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.MedalTable")
	defer span.End()

	snapshot, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	return standings.MedalTable(snapshot), nil
}

func (s *StandingsService) Highlights(ctx context.Context) (standings.Highlights, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Highlights")
	defer span.End()

	snapshot, err := s.loadSnapshot(ctx)
	if err != nil {
		return standings.Highlights{}, err
	}

	return standings.ComputeHighlights(snapshot), nil
}

// loadSnapshot fetches the four source row sets concurrently. Each read runs
// against committed state; an in-flight recording transaction is either
// fully visible or not at all.
func (s *StandingsService) loadSnapshot(ctx context.Context) (standings.Snapshot, error) {
	var snapshot standings.Snapshot

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		items, err := s.teamRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		snapshot.Teams = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.playerRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		snapshot.Players = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.resultRepo.ListTeamResults(ctx)
		if err != nil {
			return fmt.Errorf("list team results: %w", err)
		}
		snapshot.TeamResults = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.resultRepo.ListIndividualResults(ctx)
		if err != nil {
			return fmt.Errorf("list individual results: %w", err)
		}
		snapshot.IndividualResults = items
		return nil
	})

	if err := p.Wait(); err != nil {
		return standings.Snapshot{}, err
	}

	return snapshot, nil
}
