package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/football-101/internal/domain/standing"
)

type StandingRepository struct {
	store *Store
}

func NewStandingRepository(store *Store) *StandingRepository {
	return &StandingRepository{store: store}
}

func (r *StandingRepository) ListBySeason(_ context.Context, leagueName string, year int) ([]standing.Standing, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.collect(func(seasonYear int, name string, _ bool) bool {
		return name == leagueName && seasonYear == year
	}), nil
}

func (r *StandingRepository) ListCurrent(_ context.Context, leagueName string) ([]standing.Standing, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.collect(func(_ int, name string, current bool) bool {
		return name == leagueName && current
	}), nil
}

func (r *StandingRepository) UpsertMany(_ context.Context, seasonID int64, items []standing.Standing) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, item := range items {
		item.SeasonID = seasonID
		item.TeamName = ""
		item.TeamLogoURL = nil
		item.LeagueName = ""
		item.SeasonYear = 0
		r.store.standings[standingKey{seasonID: seasonID, teamID: item.TeamID}] = item
	}
	return nil
}

func (r *StandingRepository) Count(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.standings), nil
}

// collect returns matching rows decorated with their joined names, ordered by
// rank. Callers hold the read lock.
func (r *StandingRepository) collect(match func(year int, leagueName string, current bool) bool) []standing.Standing {
	out := make([]standing.Standing, 0)
	for key, item := range r.store.standings {
		s, leagueName, ok := r.store.seasonOf(key.seasonID)
		if !ok || !match(s.Year, leagueName, s.IsCurrent) {
			continue
		}
		t, ok := r.store.teams[key.teamID]
		if !ok {
			continue
		}
		item.TeamName = t.Name
		item.TeamLogoURL = t.LogoURL
		item.LeagueName = leagueName
		item.SeasonYear = s.Year
		out = append(out, item)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].TeamID < out[j].TeamID
	})
	return out
}
