package result

import "errors"

// Points awarded per finishing position. Server-authoritative: clients never
// supply point values, they are always taken from these tables.
var (
	TeamPointsByPosition       = map[int]int{1: 20, 2: 10}
	IndividualPointsByPosition = map[int]int{1: 10, 2: 5, 3: 2}
)

// Podium sizes per event kind. Team events place two teams, individual
// events place three players. A recorded event always has exactly this many
// rows, an unrecorded one has none.
const (
	TeamPodiumSize       = 2
	IndividualPodiumSize = 3
)

var (
	ErrNoResultForPlayer = errors.New("no individual result for player in this event")
)

// TeamResult is one podium row of a team event.
type TeamResult struct {
	EventID  int64
	TeamID   int64
	Position int
	Points   int
}

// IndividualResult is one podium row of an individual event. At most one row
// per event carries the MVP flag.
type IndividualResult struct {
	EventID  int64
	PlayerID int64
	Position int
	Points   int
	MVP      bool
}
