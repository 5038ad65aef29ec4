package httpapi

import (
	"context"
	"net/http"

	"github.com/riskibarqy/football-101/internal/domain/fixture"
	"github.com/riskibarqy/football-101/internal/usecase"
)

func (h *Handler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtures")
	defer span.End()

	seasonYear, err := queryInt(r, "season")
	if err != nil {
		writeError(ctx, w, err, "fixtures")
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(ctx, w, err, "fixtures")
		return
	}
	req := fixturesRequest{League: queryLeague(r), Season: seasonYear, Limit: limit}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err, "fixtures")
		return
	}

	result, err := h.fixtureService.GetFixtures(ctx, usecase.FixturesQuery{
		League: req.League,
		Season: req.Season,
		Limit:  req.Limit,
	})
	if err != nil {
		h.logFailure(ctx, "list fixtures failed", err, "fixtures", "league", req.League)
		writeError(ctx, w, err, "fixtures")
		return
	}

	writeList(ctx, w, &listScope{League: result.League, Season: &result.Season}, mapItems(result.Items, fixtureToDTO))
}

func (h *Handler) ListUpcomingFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUpcomingFixtures")
	defer span.End()

	h.serveFixtureView(ctx, w, r, "upcoming fixtures", h.fixtureService.GetUpcomingFixtures)
}

func (h *Handler) ListRecentResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRecentResults")
	defer span.End()

	h.serveFixtureView(ctx, w, r, "results", h.fixtureService.GetRecentResults)
}

type fixtureViewFunc func(ctx context.Context, leagueName string, limit *int) ([]fixture.Fixture, error)

func (h *Handler) serveFixtureView(ctx context.Context, w http.ResponseWriter, r *http.Request, resource string, load fixtureViewFunc) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(ctx, w, err, resource)
		return
	}
	req := viewRequest{League: queryLeague(r), Limit: limit}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err, resource)
		return
	}

	items, err := load(ctx, req.League, req.Limit)
	if err != nil {
		h.logFailure(ctx, "list "+resource+" failed", err, resource, "league", req.League)
		writeError(ctx, w, err, resource)
		return
	}

	scope := &listScope{League: req.League}
	if len(items) > 0 {
		scope.League = items[0].LeagueName
		scope.Season = &items[0].SeasonYear
	}
	writeList(ctx, w, scope, mapItems(items, fixtureToDTO))
}
