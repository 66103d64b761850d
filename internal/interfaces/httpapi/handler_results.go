package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/rakhadian/sportsday/internal/usecase"
)

type recordResultsRequest struct {
	WinnerTeamID   int64 `json:"winnerTeamId" validate:"omitempty,gt=0"`
	SecondTeamID   int64 `json:"secondTeamId" validate:"omitempty,gt=0"`
	FirstPlayerID  int64 `json:"firstPlayerId" validate:"omitempty,gt=0"`
	SecondPlayerID int64 `json:"secondPlayerId" validate:"omitempty,gt=0"`
	ThirdPlayerID  int64 `json:"thirdPlayerId" validate:"omitempty,gt=0"`
}

type mvpRequest struct {
	PlayerID int64 `json:"playerId" validate:"required,gt=0"`
}

func (h *Handler) RecordResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordResults")
	defer span.End()

	eventID, err := eventIDFromPath(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req recordResultsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	err = h.resultService.RecordResults(ctx, eventID, usecase.RecordResultsInput{
		WinnerTeamID:   req.WinnerTeamID,
		SecondTeamID:   req.SecondTeamID,
		FirstPlayerID:  req.FirstPlayerID,
		SecondPlayerID: req.SecondPlayerID,
		ThirdPlayerID:  req.ThirdPlayerID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record results failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}

func (h *Handler) SetMVP(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetMVP")
	defer span.End()

	eventID, err := eventIDFromPath(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req mvpRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.resultService.SetMVP(ctx, eventID, req.PlayerID); err != nil {
		h.logger.WarnContext(ctx, "set mvp failed", "event_id", eventID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}

func eventIDFromPath(ctx context.Context, r *http.Request) (int64, error) {
	_, span := startSpan(ctx, "httpapi.eventIDFromPath")
	defer span.End()

	raw := strings.TrimSpace(r.PathValue("eventID"))
	eventID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || eventID <= 0 {
		return 0, fmt.Errorf("%w: event id %q is not a positive integer", usecase.ErrInvalidInput, raw)
	}

	return eventID, nil
}
