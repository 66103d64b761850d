package memory

import (
	"context"
	"sync"

	"github.com/rakhadian/sportsday/internal/domain/result"
)

type ResultRepository struct {
	mu         sync.RWMutex
	team       map[int64][]result.TeamResult
	individual map[int64][]result.IndividualResult
}

func NewResultRepository() *ResultRepository {
	return &ResultRepository{
		team:       make(map[int64][]result.TeamResult),
		individual: make(map[int64][]result.IndividualResult),
	}
}

func (r *ResultRepository) ListTeamResults(_ context.Context) ([]result.TeamResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]result.TeamResult, 0)
	for _, rows := range r.team {
		out = append(out, rows...)
	}

	return out, nil
}

func (r *ResultRepository) ListIndividualResults(_ context.Context) ([]result.IndividualResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]result.IndividualResult, 0)
	for _, rows := range r.individual {
		out = append(out, rows...)
	}

	return out, nil
}

func (r *ResultRepository) ReplaceTeamResults(_ context.Context, eventID int64, rows []result.TeamResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.team[eventID] = append([]result.TeamResult(nil), rows...)

	return nil
}

func (r *ResultRepository) ReplaceIndividualResults(_ context.Context, eventID int64, rows []result.IndividualResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.individual[eventID] = append([]result.IndividualResult(nil), rows...)

	return nil
}

func (r *ResultRepository) SetMVP(_ context.Context, eventID, playerID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := r.individual[eventID]
	target := -1
	for idx := range rows {
		if rows[idx].PlayerID == playerID {
			target = idx
			break
		}
	}
	if target < 0 {
		return result.ErrNoResultForPlayer
	}

	for idx := range rows {
		rows[idx].MVP = idx == target
	}

	return nil
}
