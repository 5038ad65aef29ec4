package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/football-101/internal/domain/fixture"
)

type FixtureRepository struct {
	store *Store
}

func NewFixtureRepository(store *Store) *FixtureRepository {
	return &FixtureRepository{store: store}
}

func (r *FixtureRepository) ListBySeason(_ context.Context, leagueName string, year int, limit int) ([]fixture.Fixture, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := r.collect(func(item fixture.Fixture) bool {
		return item.LeagueName == leagueName && item.SeasonYear == year
	})
	sortByDate(out, false)
	return truncate(out, limit), nil
}

func (r *FixtureRepository) ListUpcoming(_ context.Context, leagueName string, limit int) ([]fixture.Fixture, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	now := r.store.now()
	out := r.collect(func(item fixture.Fixture) bool {
		return item.LeagueName == leagueName && fixture.IsUpcomingStatus(item.Status) && !item.Date.Before(now)
	})
	sortByDate(out, false)
	return truncate(out, limit), nil
}

func (r *FixtureRepository) ListRecentResults(_ context.Context, leagueName string, limit int) ([]fixture.Fixture, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := r.collect(func(item fixture.Fixture) bool {
		return item.LeagueName == leagueName && fixture.IsFinishedStatus(item.Status)
	})
	sortByDate(out, true)
	return truncate(out, limit), nil
}

func (r *FixtureRepository) UpsertMany(_ context.Context, seasonID int64, items []fixture.Fixture) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, item := range items {
		item.SeasonID = seasonID
		item.Status = fixture.NormalizeStatus(item.Status)
		item.Date = item.Date.UTC()
		item.HomeTeamName = ""
		item.AwayTeamName = ""
		item.LeagueName = ""
		item.SeasonYear = 0
		r.store.fixtures[item.ID] = item
	}
	return nil
}

func (r *FixtureRepository) Count(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.fixtures), nil
}

// collect decorates every fixture with joined names before applying match.
// Callers hold the read lock.
func (r *FixtureRepository) collect(match func(item fixture.Fixture) bool) []fixture.Fixture {
	out := make([]fixture.Fixture, 0)
	for _, item := range r.store.fixtures {
		s, leagueName, ok := r.store.seasonOf(item.SeasonID)
		if !ok {
			continue
		}
		home, okHome := r.store.teams[item.HomeTeamID]
		away, okAway := r.store.teams[item.AwayTeamID]
		if !okHome || !okAway {
			continue
		}
		item.HomeTeamName = home.Name
		item.AwayTeamName = away.Name
		item.LeagueName = leagueName
		item.SeasonYear = s.Year
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}

func sortByDate(items []fixture.Fixture, newestFirst bool) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].Date.Equal(items[j].Date) {
			if newestFirst {
				return items[i].Date.After(items[j].Date)
			}
			return items[i].Date.Before(items[j].Date)
		}
		return items[i].ID < items[j].ID
	})
}

func truncate(items []fixture.Fixture, limit int) []fixture.Fixture {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
