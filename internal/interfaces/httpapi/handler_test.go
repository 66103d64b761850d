package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/rakhadian/sportsday/internal/infrastructure/repository/memory"
	"github.com/rakhadian/sportsday/internal/platform/logging"
	"github.com/rakhadian/sportsday/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	eventRepo := memory.NewEventRepository(memory.SeedEvents())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	resultRepo := memory.NewResultRepository()

	handler := NewHandler(
		usecase.NewCompetitionService(eventRepo, teamRepo, playerRepo),
		usecase.NewResultService(eventRepo, resultRepo),
		usecase.NewStandingsService(teamRepo, playerRepo, resultRepo),
		logging.NewNop(),
	)

	return NewRouter(handler, logging.NewNop(), []string{"*"})
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) any {
	t.Helper()

	var envelope struct {
		APIVersion string `json:"apiVersion"`
		Data       any    `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}

	return envelope.Data
}

func TestRouter_ListEventsDerivesType(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/events", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	items, ok := decodeData(t, rec).([]any)
	if !ok || len(items) == 0 {
		t.Fatalf("expected non-empty event list")
	}

	first, _ := items[0].(map[string]any)
	if got, _ := first["type"].(string); got != "team" {
		t.Fatalf("expected first seeded event to have type=team, got %v", first["type"])
	}
}

func TestRouter_RecordTeamResultsAndStandings(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/events/1/results",
		`{"winnerTeamId": 2, "secondTeamId": 1}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/standings/teams", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	items, ok := decodeData(t, rec).([]any)
	if !ok {
		t.Fatalf("expected standings array")
	}
	if len(items) != 4 {
		t.Fatalf("expected all 4 seeded teams in standings, got %d", len(items))
	}

	top, _ := items[0].(map[string]any)
	if got, _ := top["teamName"].(string); got != "Product" {
		t.Fatalf("expected Product on top after winning, got %v", top["teamName"])
	}
	if got, _ := top["totalPoints"].(float64); got != 20 {
		t.Fatalf("expected winner totalPoints=20, got %v", top["totalPoints"])
	}
}

func TestRouter_MVPFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/events/4/results",
		`{"firstPlayerId": 1, "secondPlayerId": 3, "thirdPlayerId": 5}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204 recording results, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPut, "/v1/events/4/mvp", `{"playerId": 3}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204 setting mvp, got %d: %s", rec.Code, rec.Body.String())
	}

	// A player without a result row in the event cannot be MVP.
	rec = doJSON(t, router, http.MethodPut, "/v1/events/4/mvp", `{"playerId": 7}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for non-participant mvp, got %d", rec.Code)
	}

	// MVP on a team game is a domain error.
	rec = doJSON(t, router, http.MethodPut, "/v1/events/1/mvp", `{"playerId": 1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for mvp on team game, got %d", rec.Code)
	}
}

func TestRouter_RecordResultsErrors(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name     string
		path     string
		body     string
		wantCode int
	}{
		{"unknown event", "/v1/events/99/results", `{"winnerTeamId": 1, "secondTeamId": 2}`, http.StatusNotFound},
		{"non-numeric event id", "/v1/events/abc/results", `{"winnerTeamId": 1, "secondTeamId": 2}`, http.StatusBadRequest},
		{"duplicate team ids", "/v1/events/1/results", `{"winnerTeamId": 1, "secondTeamId": 1}`, http.StatusBadRequest},
		{"individual payload on team event", "/v1/events/1/results", `{"firstPlayerId": 1, "secondPlayerId": 2, "thirdPlayerId": 3}`, http.StatusBadRequest},
		{"unknown json field", "/v1/events/1/results", `{"winnerTeamId": 1, "secondTeamId": 2, "points": 99}`, http.StatusBadRequest},
		{"malformed json", "/v1/events/1/results", `{"winnerTeamId":`, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, tc.path, tc.body)
			if rec.Code != tc.wantCode {
				t.Fatalf("expected status %d, got %d: %s", tc.wantCode, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRouter_HighlightsNullWhenEmpty(t *testing.T) {
	eventRepo := memory.NewEventRepository(nil)
	teamRepo := memory.NewTeamRepository(nil)
	playerRepo := memory.NewPlayerRepository(nil)
	resultRepo := memory.NewResultRepository()

	handler := NewHandler(
		usecase.NewCompetitionService(eventRepo, teamRepo, playerRepo),
		usecase.NewResultService(eventRepo, resultRepo),
		usecase.NewStandingsService(teamRepo, playerRepo, resultRepo),
		logging.NewNop(),
	)
	router := NewRouter(handler, logging.NewNop(), nil)

	rec := doJSON(t, router, http.MethodGet, "/v1/highlights", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	data, ok := decodeData(t, rec).(map[string]any)
	if !ok {
		t.Fatalf("expected highlights object")
	}
	if data["topTeam"] != nil {
		t.Fatalf("expected topTeam=null for empty competition, got %v", data["topTeam"])
	}
	if data["topPlayer"] != nil {
		t.Fatalf("expected topPlayer=null for empty competition, got %v", data["topPlayer"])
	}
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
