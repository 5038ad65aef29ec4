package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /{$}", handler.Root)
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAPIRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /api/standings", handler.ListStandings)
	mux.HandleFunc("GET /api/standings/current", handler.ListCurrentStandings)
	mux.HandleFunc("GET /api/fixtures", handler.ListFixtures)
	mux.HandleFunc("GET /api/fixtures/upcoming", handler.ListUpcomingFixtures)
	mux.HandleFunc("GET /api/fixtures/results", handler.ListRecentResults)
	mux.HandleFunc("GET /api/teams", handler.ListTeams)
	mux.HandleFunc("GET /api/teams/{id}", handler.GetTeam)
}

// Legacy routes predate the envelope and return bare arrays.
func registerLegacyRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /premier-league/table", handler.LegacyTable)
	mux.HandleFunc("GET /premier-league/fixtures", handler.LegacyFixtures)
}
