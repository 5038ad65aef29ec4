package httpapi

import "net/http"

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Root")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, healthDTO{
		Message:    "Football-101 API",
		Status:     "healthy",
		Version:    h.info.Version,
		DataSource: h.info.DataSource,
	})
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeItem(ctx, w, map[string]string{"status": "ok"})
}
