package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/football-101/internal/config"
	"github.com/riskibarqy/football-101/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-101/internal/platform/logging"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		ServiceVersion:     "test",
		HTTPAddr:           ":0",
		Storage:            config.StorageMemory,
		CORSAllowedOrigins: []string{"*"},
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		DefaultLeague:      "Premier League",
		DefaultSeason:      memory.SeedSeasonYear,
		PopulateWorkers:    1,
	}
}

func TestOpenRepositories_MemoryServesSeededData(t *testing.T) {
	cfg := memoryConfig()
	repos, err := OpenRepositories(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("open repositories: %v", err)
	}
	t.Cleanup(func() { _ = repos.Close() })

	srv, err := NewHTTPServer(cfg, repos, logging.NewNop())
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/standings", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	report, err := NewVerifyService(repos).Report(context.Background())
	if err != nil {
		t.Fatalf("verify report: %v", err)
	}
	if len(report.Seasons) != 1 || report.Seasons[0].Teams != 2 {
		t.Fatalf("unexpected verify report: %+v", report.Seasons)
	}
}

func TestOpenRepositories_RejectsUnknownStorage(t *testing.T) {
	cfg := memoryConfig()
	cfg.Storage = "redis"
	if _, err := OpenRepositories(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for unknown storage")
	}
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	store, err := memory.NewSeededStore(time.Now())
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}
	cfg := memoryConfig()
	cfg.HTTPAddr = ""
	if _, err := NewHTTPServer(cfg, MemoryRepositories(store), logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

func TestNewPopulationService_Wires(t *testing.T) {
	store, err := memory.NewSeededStore(time.Now())
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}
	cfg := memoryConfig()
	cfg.APIFootballKey = "key"
	cfg.APIFootballLeagueIDByKey = map[string]int64{"premier": 39}
	if svc := NewPopulationService(cfg, MemoryRepositories(store), logging.NewNop()); svc == nil {
		t.Fatalf("expected population service")
	}
}
