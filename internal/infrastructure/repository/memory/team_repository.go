package memory

import (
	"context"
	"sync"

	"github.com/rakhadian/sportsday/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams []team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	return &TeamRepository{teams: append([]team.Team(nil), teams...)}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	out = append(out, r.teams...)

	return out, nil
}
