package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/football-101/external/apifootball"
	"github.com/riskibarqy/football-101/internal/config"
	"github.com/riskibarqy/football-101/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-101/internal/platform/logging"
	"github.com/riskibarqy/football-101/internal/platform/resilience"
	"github.com/riskibarqy/football-101/internal/usecase"
)

func queryDefaults(cfg config.Config) usecase.QueryDefaults {
	return usecase.QueryDefaults{League: cfg.DefaultLeague, SeasonYear: cfg.DefaultSeason}
}

func NewHTTPServer(cfg config.Config, repos *Repositories, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if repos == nil {
		return nil, fmt.Errorf("repositories are required")
	}

	defaults := queryDefaults(cfg)
	dataSource := "PostgreSQL Database"
	if cfg.Storage == config.StorageMemory {
		dataSource = "In-Memory Demo Data"
	}

	handler := httpapi.NewHandler(
		usecase.NewSeasonService(defaults, repos.Seasons),
		usecase.NewStandingService(defaults, repos.Standings),
		usecase.NewFixtureService(defaults, repos.Fixtures),
		usecase.NewTeamService(repos.Teams),
		httpapi.ServiceInfo{Version: cfg.ServiceVersion, DataSource: dataSource},
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func NewSeasonService(cfg config.Config, repos *Repositories) *usecase.SeasonService {
	return usecase.NewSeasonService(queryDefaults(cfg), repos.Seasons)
}

func NewVerifyService(repos *Repositories) *usecase.VerifyService {
	return usecase.NewVerifyService(repos.Leagues, repos.Seasons, repos.Teams, repos.Standings, repos.Fixtures)
}

// NewPopulationService wires the API-Football client into the population
// job. Callers check cfg.ValidateProvider first.
func NewPopulationService(cfg config.Config, repos *Repositories, logger *logging.Logger) *usecase.PopulationService {
	client := apifootball.NewClient(apifootball.ClientConfig{
		BaseURL:    cfg.APIFootballBaseURL,
		Host:       cfg.APIFootballHost,
		APIKey:     cfg.APIFootballKey,
		Timeout:    cfg.APIFootballTimeout,
		MaxRetries: cfg.APIFootballMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.APIFootballCircuitEnabled,
			FailureThreshold: cfg.APIFootballCircuitFailureCount,
			OpenTimeout:      cfg.APIFootballCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.APIFootballCircuitHalfOpenMaxReq,
		},
	})

	return usecase.NewPopulationService(
		client,
		repos.Leagues,
		repos.Seasons,
		repos.Teams,
		repos.Standings,
		repos.Fixtures,
		usecase.PopulationConfig{
			LeagueIDByKey:  cfg.APIFootballLeagueIDByKey,
			CurrentSeason:  cfg.DefaultSeason,
			RateLimitDelay: cfg.PopulateRateLimitDelay,
			Workers:        cfg.PopulateWorkers,
			FixtureCount:   cfg.PopulateFixtureCount,
		},
		logger,
	)
}
