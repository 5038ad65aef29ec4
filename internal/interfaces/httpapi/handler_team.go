package httpapi

import "net/http"

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	req := leagueRequest{League: queryLeague(r)}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err, "teams")
		return
	}

	teams, err := h.teamService.ListTeams(ctx, req.League)
	if err != nil {
		h.logFailure(ctx, "list teams failed", err, "teams", "league", req.League)
		writeError(ctx, w, err, "teams")
		return
	}

	writeList(ctx, w, nil, mapItems(teams, teamToDTO))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err, "team")
		return
	}
	req := teamRequest{ID: teamID}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err, "team")
		return
	}

	item, err := h.teamService.GetTeam(ctx, req.ID)
	if err != nil {
		h.logFailure(ctx, "get team failed", err, "team", "team_id", req.ID)
		writeError(ctx, w, err, "team")
		return
	}

	writeItem(ctx, w, teamToDTO(item))
}
