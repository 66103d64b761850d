package standings

import "sort"

// teamAccumulator collects points and medals for one team from both result
// sources. Individual-event rows are attributed through the player's team.
type teamAccumulator struct {
	teamID      int64
	teamName    string
	gold        int
	silver      int
	bronze      int
	totalPoints int
}

func accumulateTeams(s Snapshot) []*teamAccumulator {
	byID := make(map[int64]*teamAccumulator, len(s.Teams))
	ordered := make([]*teamAccumulator, 0, len(s.Teams))
	for _, t := range s.Teams {
		acc := &teamAccumulator{teamID: t.ID, teamName: t.Name}
		byID[t.ID] = acc
		ordered = append(ordered, acc)
	}

	teamByPlayer := make(map[int64]int64, len(s.Players))
	for _, p := range s.Players {
		teamByPlayer[p.ID] = p.TeamID
	}

	for _, r := range s.TeamResults {
		acc, ok := byID[r.TeamID]
		if !ok {
			continue
		}
		acc.totalPoints += r.Points
		switch r.Position {
		case 1:
			acc.gold++
		case 2:
			acc.silver++
		}
		// Position 3 cannot occur for team events: only two teams place.
	}

	for _, r := range s.IndividualResults {
		acc, ok := byID[teamByPlayer[r.PlayerID]]
		if !ok {
			continue
		}
		acc.totalPoints += r.Points
		switch r.Position {
		case 1:
			acc.gold++
		case 2:
			acc.silver++
		case 3:
			acc.bronze++
		}
	}

	return ordered
}

// TeamTotals computes the unranked team standings: total points across both
// result sources, sorted by points desc then name asc. Teams without any
// result appear with zero points.
func TeamTotals(s Snapshot) []TeamTotal {
	accs := accumulateTeams(s)
	out := make([]TeamTotal, 0, len(accs))
	for _, acc := range accs {
		out = append(out, TeamTotal{TeamID: acc.teamID, TeamName: acc.teamName, TotalPoints: acc.totalPoints})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPoints != out[j].TotalPoints {
			return out[i].TotalPoints > out[j].TotalPoints
		}
		return out[i].TeamName < out[j].TeamName
	})

	return out
}

// MedalTable computes per-team medal counts sorted by gold, silver, bronze
// desc then name asc.
func MedalTable(s Snapshot) []MedalRow {
	accs := accumulateTeams(s)
	out := make([]MedalRow, 0, len(accs))
	for _, acc := range accs {
		out = append(out, MedalRow{
			TeamID:   acc.teamID,
			TeamName: acc.teamName,
			Gold:     acc.gold,
			Silver:   acc.silver,
			Bronze:   acc.bronze,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Gold != b.Gold {
			return a.Gold > b.Gold
		}
		if a.Silver != b.Silver {
			return a.Silver > b.Silver
		}
		if a.Bronze != b.Bronze {
			return a.Bronze > b.Bronze
		}
		return a.TeamName < b.TeamName
	})

	return out
}

// RankedTeams computes the Olympic-style team table with dense ranks over
// (gold desc, silver desc, bronze desc, totalPoints desc, name asc). The
// name tie-break makes the order a strict total order, so ranks are always
// well defined.
func RankedTeams(s Snapshot) []TeamRow {
	accs := accumulateTeams(s)
	out := make([]TeamRow, 0, len(accs))
	for _, acc := range accs {
		out = append(out, TeamRow{
			TeamID:      acc.teamID,
			TeamName:    acc.teamName,
			Gold:        acc.gold,
			Silver:      acc.silver,
			Bronze:      acc.bronze,
			TotalPoints: acc.totalPoints,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return lessTeamRow(out[i], out[j])
	})
	for i := range out {
		if i > 0 && sameTeamKey(out[i], out[i-1]) {
			out[i].Rank = out[i-1].Rank
			continue
		}
		if i > 0 {
			out[i].Rank = out[i-1].Rank + 1
			continue
		}
		out[i].Rank = 1
	}

	return out
}

func lessTeamRow(a, b TeamRow) bool {
	if a.Gold != b.Gold {
		return a.Gold > b.Gold
	}
	if a.Silver != b.Silver {
		return a.Silver > b.Silver
	}
	if a.Bronze != b.Bronze {
		return a.Bronze > b.Bronze
	}
	if a.TotalPoints != b.TotalPoints {
		return a.TotalPoints > b.TotalPoints
	}
	return a.TeamName < b.TeamName
}

// sameTeamKey covers all five ranking keys, so two rows only ever share a
// rank when they are tied on the full composite.
func sameTeamKey(a, b TeamRow) bool {
	return a.Gold == b.Gold && a.Silver == b.Silver && a.Bronze == b.Bronze &&
		a.TotalPoints == b.TotalPoints && a.TeamName == b.TeamName
}

// RankedPlayers computes the per-player table from individual-event results
// only, dense-ranked over (gold desc, silver desc, bronze desc, totalPoints
// desc, name asc). Players without results appear with zeros.
func RankedPlayers(s Snapshot) []PlayerRow {
	teamNameByID := make(map[int64]string, len(s.Teams))
	for _, t := range s.Teams {
		teamNameByID[t.ID] = t.Name
	}

	out := make([]PlayerRow, 0, len(s.Players))
	for _, p := range s.Players {
		out = append(out, PlayerRow{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			TeamID:     p.TeamID,
			TeamName:   teamNameByID[p.TeamID],
		})
	}
	byID := make(map[int64]*PlayerRow, len(out))
	for i := range out {
		byID[out[i].PlayerID] = &out[i]
	}

	for _, r := range s.IndividualResults {
		row, ok := byID[r.PlayerID]
		if !ok {
			continue
		}
		row.TotalPoints += r.Points
		switch r.Position {
		case 1:
			row.Gold++
		case 2:
			row.Silver++
		case 3:
			row.Bronze++
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return lessPlayerRow(out[i], out[j])
	})
	for i := range out {
		if i > 0 && samePlayerKey(out[i], out[i-1]) {
			out[i].Rank = out[i-1].Rank
			continue
		}
		if i > 0 {
			out[i].Rank = out[i-1].Rank + 1
			continue
		}
		out[i].Rank = 1
	}

	return out
}

func lessPlayerRow(a, b PlayerRow) bool {
	if a.Gold != b.Gold {
		return a.Gold > b.Gold
	}
	if a.Silver != b.Silver {
		return a.Silver > b.Silver
	}
	if a.Bronze != b.Bronze {
		return a.Bronze > b.Bronze
	}
	if a.TotalPoints != b.TotalPoints {
		return a.TotalPoints > b.TotalPoints
	}
	return a.PlayerName < b.PlayerName
}

func samePlayerKey(a, b PlayerRow) bool {
	return a.Gold == b.Gold && a.Silver == b.Silver && a.Bronze == b.Bronze &&
		a.TotalPoints == b.TotalPoints && a.PlayerName == b.PlayerName
}

// ComputeHighlights picks the single top team and top overall player.
// The top team uses the ranked-team ordering. The top player uses a
// points-first ordering (totalPoints desc, gold desc, silver desc, bronze
// desc, name asc), which differs from the ranked player table on purpose:
// the best overall player is the one with the most individual points.
func ComputeHighlights(s Snapshot) Highlights {
	var h Highlights

	if teams := RankedTeams(s); len(teams) > 0 {
		top := teams[0]
		h.TopTeam = &top
	}

	players := RankedPlayers(s)
	if len(players) > 0 {
		sort.Slice(players, func(i, j int) bool {
			a, b := players[i], players[j]
			if a.TotalPoints != b.TotalPoints {
				return a.TotalPoints > b.TotalPoints
			}
			if a.Gold != b.Gold {
				return a.Gold > b.Gold
			}
			if a.Silver != b.Silver {
				return a.Silver > b.Silver
			}
			if a.Bronze != b.Bronze {
				return a.Bronze > b.Bronze
			}
			return a.PlayerName < b.PlayerName
		})
		top := players[0]
		top.Rank = 0
		h.TopPlayer = &top
	}

	return h
}
