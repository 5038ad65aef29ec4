package app

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/football-101/internal/config"
	"github.com/riskibarqy/football-101/internal/domain/fixture"
	"github.com/riskibarqy/football-101/internal/domain/league"
	"github.com/riskibarqy/football-101/internal/domain/season"
	"github.com/riskibarqy/football-101/internal/domain/standing"
	"github.com/riskibarqy/football-101/internal/domain/team"
	"github.com/riskibarqy/football-101/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-101/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-101/internal/platform/logging"
)

// Repositories groups the storage implementations picked by APP_STORAGE.
type Repositories struct {
	Leagues   league.Repository
	Seasons   season.Repository
	Teams     team.Repository
	Standings standing.Repository
	Fixtures  fixture.Repository

	close func() error
}

func (r *Repositories) Close() error {
	if r == nil || r.close == nil {
		return nil
	}
	return r.close()
}

func OpenRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Repositories, error) {
	if logger == nil {
		logger = logging.Default()
	}

	switch cfg.Storage {
	case config.StorageMemory:
		store, err := memory.NewSeededStore(time.Now().UTC())
		if err != nil {
			return nil, fmt.Errorf("seed memory store: %w", err)
		}
		logger.Warn("using in-memory storage with demo data", "storage", cfg.Storage)
		return MemoryRepositories(store), nil
	case config.StoragePostgres:
		db, err := OpenDatabase(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return &Repositories{
			Leagues:   postgres.NewLeagueRepository(db),
			Seasons:   postgres.NewSeasonRepository(db),
			Teams:     postgres.NewTeamRepository(db),
			Standings: postgres.NewStandingRepository(db),
			Fixtures:  postgres.NewFixtureRepository(db),
			close:     db.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported storage %q", cfg.Storage)
	}
}

func MemoryRepositories(store *memory.Store) *Repositories {
	return &Repositories{
		Leagues:   memory.NewLeagueRepository(store),
		Seasons:   memory.NewSeasonRepository(store),
		Teams:     memory.NewTeamRepository(store),
		Standings: memory.NewStandingRepository(store),
		Fixtures:  memory.NewFixtureRepository(store),
	}
}
