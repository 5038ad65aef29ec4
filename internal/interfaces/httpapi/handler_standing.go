package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-101/internal/usecase"
)

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	req := leagueRequest{League: queryLeague(r)}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err, "seasons")
		return
	}

	seasons, err := h.seasonService.ListSeasons(ctx, req.League)
	if err != nil {
		h.logFailure(ctx, "list seasons failed", err, "seasons", "league", req.League)
		writeError(ctx, w, err, "seasons")
		return
	}

	writeList(ctx, w, nil, mapItems(seasons, seasonToDTO))
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	seasonYear, err := queryInt(r, "season")
	if err != nil {
		writeError(ctx, w, err, "standings")
		return
	}
	req := standingsRequest{League: queryLeague(r), Season: seasonYear}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err, "standings")
		return
	}

	result, err := h.standingService.GetStandings(ctx, usecase.StandingsQuery{
		League: req.League,
		Season: req.Season,
	})
	if err != nil {
		h.logFailure(ctx, "list standings failed", err, "standings", "league", req.League)
		writeError(ctx, w, err, "standings")
		return
	}

	writeList(ctx, w, &listScope{League: result.League, Season: &result.Season}, mapItems(result.Items, standingToDTO))
}

func (h *Handler) ListCurrentStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCurrentStandings")
	defer span.End()

	req := leagueRequest{League: queryLeague(r)}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err, "standings")
		return
	}

	items, err := h.standingService.GetCurrentStandings(ctx, req.League)
	if err != nil {
		h.logFailure(ctx, "list current standings failed", err, "standings", "league", req.League)
		writeError(ctx, w, err, "standings")
		return
	}

	scope := &listScope{League: req.League}
	if len(items) > 0 {
		scope.League = items[0].LeagueName
		scope.Season = &items[0].SeasonYear
	}
	writeList(ctx, w, scope, mapItems(items, standingToDTO))
}
