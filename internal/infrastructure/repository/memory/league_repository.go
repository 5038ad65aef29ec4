package memory

import (
	"context"

	"github.com/riskibarqy/football-101/internal/domain/league"
)

type LeagueRepository struct {
	store *Store
}

func NewLeagueRepository(store *Store) *LeagueRepository {
	return &LeagueRepository{store: store}
}

func (r *LeagueRepository) Upsert(_ context.Context, item league.League) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.leagues[item.ID] = item
	return nil
}

func (r *LeagueRepository) Count(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.leagues), nil
}
