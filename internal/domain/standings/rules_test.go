package standings

import (
	"testing"

	"github.com/rakhadian/sportsday/internal/domain/player"
	"github.com/rakhadian/sportsday/internal/domain/result"
	"github.com/rakhadian/sportsday/internal/domain/team"
)

func twoTeamSnapshot() Snapshot {
	return Snapshot{
		Teams: []team.Team{
			{ID: 1, Name: "Alpha"},
			{ID: 2, Name: "Bravo"},
		},
		TeamResults: []result.TeamResult{
			{EventID: 10, TeamID: 1, Position: 1, Points: 20},
			{EventID: 10, TeamID: 2, Position: 2, Points: 10},
		},
	}
}

func TestRankedTeams_TeamEventOnly(t *testing.T) {
	t.Parallel()

	rows := RankedTeams(twoTeamSnapshot())
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].TeamID != 1 || rows[0].Rank != 1 || rows[0].Gold != 1 || rows[0].TotalPoints != 20 {
		t.Fatalf("unexpected rank 1 row: %+v", rows[0])
	}
	if rows[1].TeamID != 2 || rows[1].Rank != 2 || rows[1].Silver != 1 || rows[1].TotalPoints != 10 {
		t.Fatalf("unexpected rank 2 row: %+v", rows[1])
	}
	if rows[0].Bronze != 0 || rows[1].Bronze != 0 {
		t.Fatalf("team events must not produce bronze: %+v", rows)
	}
}

func TestRankedTeams_DenseRankSharesAndHasNoGaps(t *testing.T) {
	t.Parallel()

	s := Snapshot{
		Teams: []team.Team{
			{ID: 1, Name: "Alpha"},
			{ID: 2, Name: "Alpha"}, // same name to tie the full composite
			{ID: 3, Name: "Charlie"},
		},
		Players: []player.Player{
			{ID: 5, Name: "Eve", TeamID: 1},
			{ID: 6, Name: "Mallory", TeamID: 2},
		},
		IndividualResults: []result.IndividualResult{
			{EventID: 20, PlayerID: 5, Position: 1, Points: 10},
			{EventID: 21, PlayerID: 6, Position: 1, Points: 10},
		},
	}

	rows := RankedTeams(s)
	if rows[0].Rank != 1 || rows[1].Rank != 1 {
		t.Fatalf("tied composites must share rank 1: %+v", rows)
	}
	if rows[2].TeamID != 3 || rows[2].Rank != 2 {
		t.Fatalf("dense rank must continue at 2, got %+v", rows[2])
	}
}

func TestRankedTeams_MixedSourcePoints(t *testing.T) {
	t.Parallel()

	s := twoTeamSnapshot()
	s.Players = []player.Player{
		{ID: 7, Name: "Grace", TeamID: 2},
	}
	// Bravo's player wins an individual event: 10 points plus a gold,
	// attributed to Bravo through the player's team.
	s.IndividualResults = []result.IndividualResult{
		{EventID: 30, PlayerID: 7, Position: 1, Points: 10},
	}

	rows := RankedTeams(s)
	if rows[0].TeamID != 2 {
		t.Fatalf("expected Bravo first, got %+v", rows)
	}
	if rows[0].Gold != 1 || rows[0].Silver != 1 || rows[0].TotalPoints != 20 {
		t.Fatalf("unexpected Bravo totals: %+v", rows[0])
	}
	if rows[1].TeamID != 1 || rows[1].Gold != 1 || rows[1].TotalPoints != 20 {
		t.Fatalf("unexpected Alpha totals: %+v", rows[1])
	}
	// Both have 1 gold and 20 points; Bravo's silver breaks the tie.
	if rows[0].Rank != 1 || rows[1].Rank != 2 {
		t.Fatalf("unexpected ranks: %+v", rows)
	}
}

func TestTeamTotals_ZeroResultTeamsAppear(t *testing.T) {
	t.Parallel()

	s := twoTeamSnapshot()
	s.Teams = append(s.Teams, team.Team{ID: 3, Name: "Zulu"})

	rows := TeamTotals(s)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[2].TeamID != 3 || rows[2].TotalPoints != 0 {
		t.Fatalf("team without results must appear with zero points: %+v", rows[2])
	}
}

func TestMedalTable_Ordering(t *testing.T) {
	t.Parallel()

	s := Snapshot{
		Teams: []team.Team{
			{ID: 1, Name: "Bravo"},
			{ID: 2, Name: "Alpha"},
		},
	}

	rows := MedalTable(s)
	if rows[0].TeamName != "Alpha" || rows[1].TeamName != "Bravo" {
		t.Fatalf("all-zero medal rows must sort by name asc: %+v", rows)
	}
}

func TestRankedPlayers_IndividualOnly(t *testing.T) {
	t.Parallel()

	s := Snapshot{
		Teams: []team.Team{
			{ID: 1, Name: "Alpha"},
			{ID: 2, Name: "Bravo"},
		},
		Players: []player.Player{
			{ID: 5, Name: "Eve", TeamID: 1},
			{ID: 7, Name: "Grace", TeamID: 2},
			{ID: 9, Name: "Heidi", TeamID: 2},
		},
		TeamResults: []result.TeamResult{
			// Team-event rows must not leak into player standings.
			{EventID: 10, TeamID: 1, Position: 1, Points: 20},
		},
		IndividualResults: []result.IndividualResult{
			{EventID: 20, PlayerID: 5, Position: 1, Points: 10},
			{EventID: 20, PlayerID: 7, Position: 2, Points: 5},
			{EventID: 20, PlayerID: 9, Position: 3, Points: 2},
		},
	}

	rows := RankedPlayers(s)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].PlayerID != 5 || rows[0].Gold != 1 || rows[0].TotalPoints != 10 || rows[0].Rank != 1 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].PlayerID != 7 || rows[1].Silver != 1 || rows[1].Rank != 2 {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
	if rows[2].PlayerID != 9 || rows[2].Bronze != 1 || rows[2].TeamName != "Bravo" || rows[2].Rank != 3 {
		t.Fatalf("unexpected third row: %+v", rows[2])
	}
}

func TestComputeHighlights_Empty(t *testing.T) {
	t.Parallel()

	h := ComputeHighlights(Snapshot{})
	if h.TopTeam != nil || h.TopPlayer != nil {
		t.Fatalf("highlights over empty snapshot must be nil, got %+v", h)
	}
}

func TestComputeHighlights_TopPlayerIsPointsFirst(t *testing.T) {
	t.Parallel()

	s := Snapshot{
		Teams: []team.Team{{ID: 1, Name: "Alpha"}},
		Players: []player.Player{
			{ID: 5, Name: "Eve", TeamID: 1},
			{ID: 7, Name: "Grace", TeamID: 1},
		},
		IndividualResults: []result.IndividualResult{
			// Eve: one gold, 10 points. Grace: three silvers, 15 points.
			{EventID: 20, PlayerID: 5, Position: 1, Points: 10},
			{EventID: 21, PlayerID: 7, Position: 2, Points: 5},
			{EventID: 22, PlayerID: 7, Position: 2, Points: 5},
			{EventID: 23, PlayerID: 7, Position: 2, Points: 5},
		},
	}

	h := ComputeHighlights(s)
	if h.TopTeam == nil || h.TopTeam.TeamID != 1 {
		t.Fatalf("unexpected top team: %+v", h.TopTeam)
	}
	// The ranked player table would put Eve first (gold beats silver), but
	// the highlight orders by total points first.
	if h.TopPlayer == nil || h.TopPlayer.PlayerID != 7 || h.TopPlayer.TotalPoints != 15 {
		t.Fatalf("unexpected top player: %+v", h.TopPlayer)
	}
}

func TestComputeHighlights_TieBrokenByName(t *testing.T) {
	t.Parallel()

	s := Snapshot{
		Teams: []team.Team{{ID: 1, Name: "Alpha"}},
		Players: []player.Player{
			{ID: 7, Name: "Grace", TeamID: 1},
			{ID: 5, Name: "Eve", TeamID: 1},
		},
		IndividualResults: []result.IndividualResult{
			{EventID: 20, PlayerID: 5, Position: 1, Points: 10},
			{EventID: 21, PlayerID: 7, Position: 1, Points: 10},
		},
	}

	h := ComputeHighlights(s)
	if h.TopPlayer == nil || h.TopPlayer.PlayerName != "Eve" {
		t.Fatalf("name asc must break the tie deterministically: %+v", h.TopPlayer)
	}
}
