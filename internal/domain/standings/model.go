package standings

import (
	"github.com/rakhadian/sportsday/internal/domain/player"
	"github.com/rakhadian/sportsday/internal/domain/result"
	"github.com/rakhadian/sportsday/internal/domain/team"
)

// Snapshot is the committed state the aggregation works on. Every view is
// recomputed from a fresh snapshot on each request; nothing is cached.
type Snapshot struct {
	Teams             []team.Team
	Players           []player.Player
	TeamResults       []result.TeamResult
	IndividualResults []result.IndividualResult
}

// TeamTotal is one row of the unranked team standings.
type TeamTotal struct {
	TeamID      int64
	TeamName    string
	TotalPoints int
}

// MedalRow is one row of the medal table.
type MedalRow struct {
	TeamID   int64
	TeamName string
	Gold     int
	Silver   int
	Bronze   int
}

// TeamRow is one row of the Olympic-style ranked team table.
type TeamRow struct {
	TeamID      int64
	TeamName    string
	Gold        int
	Silver      int
	Bronze      int
	TotalPoints int
	Rank        int
}

// PlayerRow is one row of the ranked player table. Points and medals come
// from individual events only; players earn nothing from team events.
type PlayerRow struct {
	PlayerID    int64
	PlayerName  string
	TeamID      int64
	TeamName    string
	Gold        int
	Silver      int
	Bronze      int
	TotalPoints int
	Rank        int
}

// Highlights holds the single best team and best overall player, or nil when
// no teams or players exist.
type Highlights struct {
	TopTeam   *TeamRow
	TopPlayer *PlayerRow
}
