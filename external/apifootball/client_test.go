package apifootball

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/football-101/internal/platform/logging"
	"github.com/riskibarqy/football-101/internal/platform/resilience"
	"github.com/riskibarqy/football-101/internal/usecase"
)

const standingsPayload = `{
  "errors": [],
  "results": 1,
  "response": [{
    "league": {
      "id": 39,
      "name": "Premier League",
      "country": "England",
      "logo": "https://media.example/leagues/39.png",
      "season": 2024,
      "standings": [[
        {
          "rank": 1,
          "team": {"id": 40, "name": "Liverpool", "logo": "https://media.example/teams/40.png"},
          "points": 84,
          "goalsDiff": 45,
          "form": "WDLWW",
          "description": "Promotion - Champions League (League phase)",
          "all": {"played": 38, "win": 25, "draw": 9, "lose": 4, "goals": {"for": 86, "against": 41}},
          "home": {"played": 19, "win": 14, "draw": 4, "lose": 1, "goals": {"for": 42, "against": 16}},
          "away": {"played": 19, "win": 11, "draw": 5, "lose": 3, "goals": {"for": 44, "against": 25}}
        },
        {
          "rank": 2,
          "team": {"id": 42, "name": "Arsenal", "logo": "https://media.example/teams/42.png"},
          "points": 74,
          "goalsDiff": 35,
          "form": null,
          "description": null,
          "all": {"played": 38, "win": 20, "draw": 14, "lose": 4, "goals": {"for": 69, "against": 34}},
          "home": {"played": 19, "win": 10, "draw": 7, "lose": 2, "goals": {"for": 35, "against": 17}},
          "away": {"played": 19, "win": 10, "draw": 7, "lose": 2, "goals": {"for": 34, "against": 17}}
        }
      ]]
    }
  }]
}`

const fixturesPayload = `{
  "errors": [],
  "results": 2,
  "response": [
    {
      "fixture": {
        "id": 1208021,
        "referee": "A. Taylor",
        "timezone": "UTC",
        "date": "2025-08-15T19:00:00+00:00",
        "venue": {"name": "Anfield", "city": "Liverpool"},
        "status": {"long": "Not Started", "short": "NS", "elapsed": null}
      },
      "league": {"id": 39, "season": 2025, "round": "Regular Season - 1"},
      "teams": {
        "home": {"id": 40, "name": "Liverpool", "logo": "l.png"},
        "away": {"id": 42, "name": "Arsenal", "logo": "a.png"}
      },
      "goals": {"home": null, "away": null},
      "score": {"halftime": {"home": null, "away": null}, "fulltime": {"home": null, "away": null}}
    },
    {
      "fixture": {"id": 1208022, "timezone": "UTC", "date": "not-a-date", "venue": {}, "status": {"short": "NS"}},
      "league": {"round": "Regular Season - 1"},
      "teams": {"home": {"id": 1, "name": "A"}, "away": {"id": 2, "name": "B"}},
      "goals": {},
      "score": {"halftime": {}, "fulltime": {}}
    }
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate func(*ClientConfig)) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL + "/v3/",
		Host:       "api-football-v1.p.rapidapi.com",
		APIKey:     "secret-key",
		Logger:     logging.NewNop(),
	}
	if mutate != nil {
		mutate(&cfg)
	}

	client := NewClient(cfg)
	client.backoff = func(int) time.Duration { return time.Millisecond }
	return client
}

func TestFetchStandings_MapsTable(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/standings" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("league"); got != "39" {
			t.Errorf("unexpected league param: %q", got)
		}
		if got := r.URL.Query().Get("season"); got != "2024" {
			t.Errorf("unexpected season param: %q", got)
		}
		if got := r.Header.Get("x-rapidapi-key"); got != "secret-key" {
			t.Errorf("unexpected api key header: %q", got)
		}
		if got := r.Header.Get("x-rapidapi-host"); got != "api-football-v1.p.rapidapi.com" {
			t.Errorf("unexpected host header: %q", got)
		}
		_, _ = w.Write([]byte(standingsPayload))
	}, nil)

	table, err := client.FetchStandings(context.Background(), 39, 2024)
	if err != nil {
		t.Fatalf("fetch standings: %v", err)
	}
	if table.League.ID != 39 || table.League.Name != "Premier League" || table.League.Country != "England" || table.League.Season != 2024 {
		t.Fatalf("unexpected league: %+v", table.League)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}

	top := table.Rows[0]
	if top.Rank != 1 || top.Team.ID != 40 || top.Points != 84 || top.GoalsDiff != 45 || top.Form != "WDLWW" {
		t.Fatalf("unexpected top row: %+v", top)
	}
	if top.All.Played != 38 || top.All.GoalsFor != 86 || top.Home.Win != 14 || top.Away.GoalsAgainst != 25 {
		t.Fatalf("unexpected records: %+v", top)
	}
	if second := table.Rows[1]; second.Form != "" || second.Description != "" {
		t.Fatalf("expected null form and description to map to empty, got %+v", second)
	}
}

func TestFetchStandings_EmptyResponseIsNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[],"results":0,"response":[]}`))
	}, nil)

	_, err := client.FetchStandings(context.Background(), 39, 1990)
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFetchStandings_ProviderErrorsObject(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"errors":{"token":"Error/Missing application key."},"results":0,"response":[]}`))
	}, nil)

	_, err := client.FetchStandings(context.Background(), 39, 2024)
	if err == nil || !strings.Contains(err.Error(), "Missing application key") {
		t.Fatalf("expected provider error message, got %v", err)
	}
}

func TestFetchUpcomingFixtures_MapsAndSkipsUnparseable(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/fixtures" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("next"); got != "10" {
			t.Errorf("unexpected next param: %q", got)
		}
		_, _ = w.Write([]byte(fixturesPayload))
	}, nil)

	items, err := client.FetchUpcomingFixtures(context.Background(), 39, 10)
	if err != nil {
		t.Fatalf("fetch fixtures: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 fixture, got %d", len(items))
	}

	got := items[0]
	wantDate := time.Date(2025, 8, 15, 19, 0, 0, 0, time.UTC)
	if got.ID != 1208021 || !got.Date.Equal(wantDate) {
		t.Fatalf("unexpected fixture identity: %+v", got)
	}
	if got.VenueName != "Anfield" || got.VenueCity != "Liverpool" || got.Referee != "A. Taylor" {
		t.Fatalf("unexpected venue fields: %+v", got)
	}
	if got.StatusShort != "NS" || got.Round != "Regular Season - 1" || got.Elapsed != nil {
		t.Fatalf("unexpected status fields: %+v", got)
	}
	if got.Home.ID != 40 || got.Away.ID != 42 || got.Goals.Home != nil || got.Fulltime.Away != nil {
		t.Fatalf("unexpected teams or scores: %+v", got)
	}
}

func TestFetchUpcomingFixtures_RejectsNonPositiveNext(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	}, nil)

	_, err := client.FetchUpcomingFixtures(context.Background(), 39, 0)
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if calls.Load() != 0 {
		t.Fatalf("expected no provider calls, got %d", calls.Load())
	}
}

func TestClient_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(standingsPayload))
	}, func(cfg *ClientConfig) {
		cfg.MaxRetries = 1
	})

	if _, err := client.FetchStandings(context.Background(), 39, 2024); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 calls, got %d", calls.Load())
	}
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"invalid key secret-key"}`))
	}, func(cfg *ClientConfig) {
		cfg.MaxRetries = 3
	})

	_, err := client.FetchStandings(context.Background(), 39, 2024)
	if err == nil {
		t.Fatalf("expected error")
	}
	if errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("client errors must not be reported as unavailable: %v", err)
	}
	if strings.Contains(err.Error(), "secret-key") {
		t.Fatalf("api key leaked into error: %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected 1 call, got %d", calls.Load())
	}
}

func TestClient_CircuitBreakerOpensAfterTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, func(cfg *ClientConfig) {
		cfg.CircuitBreaker = resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		}
	})

	for i := 0; i < 2; i++ {
		_, err := client.FetchStandings(context.Background(), 39, 2024)
		if !errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("attempt %d: expected ErrDependencyUnavailable, got %v", i, err)
		}
	}

	_, err := client.FetchStandings(context.Background(), 39, 2024)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected breaker rejection, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected breaker to stop the third call, got %d calls", calls.Load())
	}
	if client.breaker.State() != resilience.CircuitStateOpen {
		t.Fatalf("expected open breaker, got %s", client.breaker.State())
	}
}

func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{BaseURL: "https://v3.football.api-sports.io/", MaxRetries: -2})
	if client.baseURL != "https://v3.football.api-sports.io" {
		t.Fatalf("unexpected baseURL: %q", client.baseURL)
	}
	if client.host != "v3.football.api-sports.io" {
		t.Fatalf("unexpected host: %q", client.host)
	}
	if client.maxRetries != 0 {
		t.Fatalf("unexpected maxRetries: %d", client.maxRetries)
	}
	if client.httpClient.Timeout != 20*time.Second {
		t.Fatalf("unexpected timeout: %s", client.httpClient.Timeout)
	}
}

func TestSanitizeSensitiveText(t *testing.T) {
	t.Parallel()

	got := sanitizeSensitiveText(`dial failed x-rapidapi-key=abc123 key secret`, "secret")
	if strings.Contains(got, "abc123") || strings.Contains(got, "secret") {
		t.Fatalf("unexpected sanitized text: %q", got)
	}
}
