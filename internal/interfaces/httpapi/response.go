package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-101/internal/usecase"
)

// envelope is the body of every /api response. Count and Data are pointers
// or interfaces so an empty list still encodes as "count":0,"data":[].
type envelope struct {
	Success bool   `json:"success"`
	League  string `json:"league,omitempty"`
	Season  *int   `json:"season,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type legacyErrorBody struct {
	Error string `json:"error"`
}

// listScope is echoed next to standings and fixtures lists.
type listScope struct {
	League string
	Season *int
}

type mappedError struct {
	HTTPStatus int
	Message    string
	Server     bool
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeItem(ctx context.Context, w http.ResponseWriter, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeItem")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, envelope{Success: true, Data: data})
}

// writeList encodes items with their count. items must be a non-nil slice.
func writeList[T any](ctx context.Context, w http.ResponseWriter, scope *listScope, items []T) {
	ctx, span := startSpan(ctx, "httpapi.writeList")
	defer span.End()

	if items == nil {
		items = []T{}
	}
	count := len(items)
	body := envelope{Success: true, Count: &count, Data: items}
	if scope != nil {
		body.League = scope.League
		body.Season = scope.Season
	}
	writeJSON(ctx, w, http.StatusOK, body)
}

// writeLegacyList encodes items as a bare JSON array.
func writeLegacyList[T any](ctx context.Context, w http.ResponseWriter, items []T) {
	ctx, span := startSpan(ctx, "httpapi.writeLegacyList")
	defer span.End()

	if items == nil {
		items = []T{}
	}
	writeJSON(ctx, w, http.StatusOK, items)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error, resource string) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err, resource)
	writeJSON(ctx, w, mapped.HTTPStatus, envelope{Success: false, Error: mapped.Message})
}

func writeLegacyError(ctx context.Context, w http.ResponseWriter, err error, resource string) {
	ctx, span := startSpan(ctx, "httpapi.writeLegacyError")
	defer span.End()

	mapped := mapError(ctx, err, resource)
	writeJSON(ctx, w, mapped.HTTPStatus, legacyErrorBody{Error: mapped.Message})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, envelope{Success: false, Error: "internal server error"})
}

// mapError picks the status for err. Messages of server side failures are
// replaced with a generic one so storage errors never reach the client.
func mapError(ctx context.Context, err error, resource string) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{HTTPStatus: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{HTTPStatus: http.StatusNotFound, Message: err.Error()}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{HTTPStatus: http.StatusServiceUnavailable, Message: resource + " temporarily unavailable", Server: true}
	default:
		return mappedError{HTTPStatus: http.StatusInternalServerError, Message: "failed to fetch " + resource, Server: true}
	}
}
