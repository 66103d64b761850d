package httpapi

import (
	"context"
	"net/http"

	"github.com/rakhadian/sportsday/internal/domain/standings"
)

func (h *Handler) TeamStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TeamStandings")
	defer span.End()

	rows, err := h.standingsService.TeamStandings(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "team standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamTotalDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, teamTotalDTO{
			TeamID:      row.TeamID,
			TeamName:    row.TeamName,
			TotalPoints: row.TotalPoints,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RankedTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RankedTeams")
	defer span.End()

	rows, err := h.standingsService.RankedTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "ranked teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rankedTeamDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, rankedTeamToDTO(ctx, row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RankedPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RankedPlayers")
	defer span.End()

	rows, err := h.standingsService.RankedPlayers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "ranked players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rankedPlayerDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, rankedPlayerToDTO(ctx, row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) MedalTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MedalTable")
	defer span.End()

	rows, err := h.standingsService.MedalTable(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "medal table failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]medalRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, medalRowDTO{
			TeamID:   row.TeamID,
			TeamName: row.TeamName,
			Gold:     row.Gold,
			Silver:   row.Silver,
			Bronze:   row.Bronze,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) Highlights(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Highlights")
	defer span.End()

	view, err := h.standingsService.Highlights(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "highlights failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := highlightsDTO{}
	if view.TopTeam != nil {
		item := topTeamHighlightDTO{
			TeamID:      view.TopTeam.TeamID,
			TeamName:    view.TopTeam.TeamName,
			Gold:        view.TopTeam.Gold,
			Silver:      view.TopTeam.Silver,
			Bronze:      view.TopTeam.Bronze,
			TotalPoints: view.TopTeam.TotalPoints,
		}
		out.TopTeam = &item
	}
	if view.TopPlayer != nil {
		item := topPlayerHighlightDTO{
			PlayerID:   view.TopPlayer.PlayerID,
			PlayerName: view.TopPlayer.PlayerName,
			TeamID:     view.TopPlayer.TeamID,
			TeamName:   view.TopPlayer.TeamName,
			Gold:       view.TopPlayer.Gold,
			Silver:     view.TopPlayer.Silver,
			Bronze:     view.TopPlayer.Bronze,
			Points:     view.TopPlayer.TotalPoints,
		}
		out.TopPlayer = &item
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

type teamTotalDTO struct {
	TeamID      int64  `json:"teamId"`
	TeamName    string `json:"teamName"`
	TotalPoints int    `json:"totalPoints"`
}

type rankedTeamDTO struct {
	TeamID      int64  `json:"teamId"`
	TeamName    string `json:"teamName"`
	Gold        int    `json:"gold"`
	Silver      int    `json:"silver"`
	Bronze      int    `json:"bronze"`
	TotalPoints int    `json:"totalPoints"`
	Rank        int    `json:"rank"`
}

type rankedPlayerDTO struct {
	PlayerID    int64  `json:"playerId"`
	PlayerName  string `json:"playerName"`
	TeamID      int64  `json:"teamId"`
	TeamName    string `json:"teamName"`
	Gold        int    `json:"gold"`
	Silver      int    `json:"silver"`
	Bronze      int    `json:"bronze"`
	TotalPoints int    `json:"totalPoints"`
	Rank        int    `json:"rank"`
}

type medalRowDTO struct {
	TeamID   int64  `json:"teamId"`
	TeamName string `json:"teamName"`
	Gold     int    `json:"gold"`
	Silver   int    `json:"silver"`
	Bronze   int    `json:"bronze"`
}

type highlightsDTO struct {
	TopTeam   *topTeamHighlightDTO   `json:"topTeam"`
	TopPlayer *topPlayerHighlightDTO `json:"topPlayer"`
}

type topTeamHighlightDTO struct {
	TeamID      int64  `json:"teamId"`
	TeamName    string `json:"teamName"`
	Gold        int    `json:"gold"`
	Silver      int    `json:"silver"`
	Bronze      int    `json:"bronze"`
	TotalPoints int    `json:"totalPoints"`
}

// topPlayerHighlightDTO reports the overall point total under the "points"
// key, unlike the ranked player table's "totalPoints".
type topPlayerHighlightDTO struct {
	PlayerID   int64  `json:"playerId"`
	PlayerName string `json:"playerName"`
	TeamID     int64  `json:"teamId"`
	TeamName   string `json:"teamName"`
	Gold       int    `json:"gold"`
	Silver     int    `json:"silver"`
	Bronze     int    `json:"bronze"`
	Points     int    `json:"points"`
}

func rankedTeamToDTO(ctx context.Context, row standings.TeamRow) rankedTeamDTO {
	_, span := startSpan(ctx, "httpapi.rankedTeamToDTO")
	defer span.End()

	return rankedTeamDTO{
		TeamID:      row.TeamID,
		TeamName:    row.TeamName,
		Gold:        row.Gold,
		Silver:      row.Silver,
		Bronze:      row.Bronze,
		TotalPoints: row.TotalPoints,
		Rank:        row.Rank,
	}
}

func rankedPlayerToDTO(ctx context.Context, row standings.PlayerRow) rankedPlayerDTO {
	_, span := startSpan(ctx, "httpapi.rankedPlayerToDTO")
	defer span.End()

	return rankedPlayerDTO{
		PlayerID:    row.PlayerID,
		PlayerName:  row.PlayerName,
		TeamID:      row.TeamID,
		TeamName:    row.TeamName,
		Gold:        row.Gold,
		Silver:      row.Silver,
		Bronze:      row.Bronze,
		TotalPoints: row.TotalPoints,
		Rank:        row.Rank,
	}
}
