package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/events", handler.ListEvents)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
}

func registerResultRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/events/{eventID}/results", handler.RecordResults)
	mux.HandleFunc("PUT /v1/events/{eventID}/mvp", handler.SetMVP)
}

func registerStandingsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/standings/teams", handler.TeamStandings)
	mux.HandleFunc("GET /v1/standings/ranked", handler.RankedTeams)
	mux.HandleFunc("GET /v1/standings/players", handler.RankedPlayers)
	mux.HandleFunc("GET /v1/medals", handler.MedalTable)
	mux.HandleFunc("GET /v1/highlights", handler.Highlights)
}
