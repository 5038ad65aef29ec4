package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-101/internal/usecase"
)

func TestWriteList_EmptyListKeepsCountAndData(t *testing.T) {
	rec := httptest.NewRecorder()
	writeList[standingDTO](context.Background(), rec, nil, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"success":true,"count":0,"data":[]}` {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestWriteList_EchoesScope(t *testing.T) {
	rec := httptest.NewRecorder()
	season := 2024
	writeList(context.Background(), rec, &listScope{League: "Premier League", Season: &season}, []teamDTO{{ID: 40, Name: "Liverpool"}})

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body["league"] != "Premier League" || body["season"] != float64(2024) || body["count"] != float64(1) {
		t.Fatalf("unexpected envelope: %v", body)
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "invalid", err: fmt.Errorf("%w: bad season", usecase.ErrInvalidInput), wantStatus: http.StatusBadRequest, wantError: "invalid input: bad season"},
		{name: "not found", err: fmt.Errorf("%w: team with id 7", usecase.ErrNotFound), wantStatus: http.StatusNotFound, wantError: "resource not found: team with id 7"},
		{name: "unavailable", err: usecase.ErrDependencyUnavailable, wantStatus: http.StatusServiceUnavailable, wantError: "standings temporarily unavailable"},
		{name: "infrastructure", err: errors.New("pq: relation \"standings\" does not exist"), wantStatus: http.StatusInternalServerError, wantError: "failed to fetch standings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tt.err, "standings")

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			var body envelope
			if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal response body: %v", err)
			}
			if body.Success || body.Error != tt.wantError {
				t.Fatalf("unexpected envelope: %+v", body)
			}
			if body.Count != nil || body.Data != nil {
				t.Fatalf("error envelope must not carry data: %s", rec.Body.String())
			}
		})
	}
}

func TestWriteLegacyError_BareErrorObject(t *testing.T) {
	rec := httptest.NewRecorder()
	writeLegacyError(context.Background(), rec, errors.New("connection refused"), "fixtures")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"failed to fetch fixtures"}` {
		t.Fatalf("unexpected body: %s", got)
	}
}
