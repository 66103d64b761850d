package httpapi

import (
	"context"
	"net/http"

	"github.com/rakhadian/sportsday/internal/domain/event"
)

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEvents")
	defer span.End()

	events, err := h.competitionService.ListEvents(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list events failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]eventDTO, 0, len(events))
	for _, e := range events {
		items = append(items, eventToDTO(ctx, e))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.competitionService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamDTO{ID: t.ID, Name: t.Name})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.competitionService.ListPlayers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerDTO{ID: p.ID, Name: p.Name, TeamID: p.TeamID})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type eventDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type teamDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type playerDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	TeamID int64  `json:"teamId"`
}

func eventToDTO(ctx context.Context, v event.Event) eventDTO {
	_, span := startSpan(ctx, "httpapi.eventToDTO")
	defer span.End()

	return eventDTO{
		ID:   v.ID,
		Name: v.Name,
		Type: string(v.Kind),
	}
}
