package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-101/internal/usecase"
)

const (
	legacyLeague       = "Premier League"
	legacyFixtureLimit = 50
)

// LegacyTable serves the default season table as a bare array for clients
// built against the first release.
func (h *Handler) LegacyTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LegacyTable")
	defer span.End()

	result, err := h.standingService.GetStandings(ctx, usecase.StandingsQuery{League: legacyLeague})
	if err != nil {
		h.logFailure(ctx, "legacy table failed", err, "standings")
		writeLegacyError(ctx, w, err, "standings")
		return
	}

	writeLegacyList(ctx, w, mapItems(result.Items, standingToDTO))
}

func (h *Handler) LegacyFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LegacyFixtures")
	defer span.End()

	limit := legacyFixtureLimit
	result, err := h.fixtureService.GetFixtures(ctx, usecase.FixturesQuery{League: legacyLeague, Limit: &limit})
	if err != nil {
		h.logFailure(ctx, "legacy fixtures failed", err, "fixtures")
		writeLegacyError(ctx, w, err, "fixtures")
		return
	}

	writeLegacyList(ctx, w, mapItems(result.Items, fixtureToDTO))
}
