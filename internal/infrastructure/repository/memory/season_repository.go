package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/football-101/internal/domain/season"
)

type SeasonRepository struct {
	store *Store
}

func NewSeasonRepository(store *Store) *SeasonRepository {
	return &SeasonRepository{store: store}
}

func (r *SeasonRepository) ListByLeague(_ context.Context, leagueName string) ([]season.Season, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	leagueIDs := r.store.leagueIDsByName(leagueName)
	out := make([]season.Season, 0)
	for _, item := range r.store.seasons {
		if _, ok := leagueIDs[item.LeagueID]; !ok {
			continue
		}
		item.LeagueName = leagueName
		out = append(out, item)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *SeasonRepository) GetByLeagueAndYear(_ context.Context, leagueName string, year int) (season.Season, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	leagueIDs := r.store.leagueIDsByName(leagueName)
	for _, item := range r.store.seasons {
		if _, ok := leagueIDs[item.LeagueID]; ok && item.Year == year {
			item.LeagueName = leagueName
			return item, true, nil
		}
	}
	return season.Season{}, false, nil
}

func (r *SeasonRepository) Upsert(_ context.Context, item season.Season) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, existing := range r.store.seasons {
		if existing.LeagueID == item.LeagueID && existing.Year == item.Year {
			item.ID = id
			item.LeagueName = ""
			r.store.seasons[id] = item
			return id, nil
		}
	}

	r.store.nextSeasonID++
	item.ID = r.store.nextSeasonID
	item.LeagueName = ""
	r.store.seasons[item.ID] = item
	return item.ID, nil
}

func (r *SeasonRepository) SetCurrent(_ context.Context, leagueName string, year int) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	leagueIDs := r.store.leagueIDsByName(leagueName)
	var flagged int64
	for _, item := range r.store.seasons {
		if _, ok := leagueIDs[item.LeagueID]; ok && item.Year == year {
			flagged++
		}
	}
	if flagged == 0 {
		return 0, nil
	}

	for id, item := range r.store.seasons {
		if _, ok := leagueIDs[item.LeagueID]; !ok {
			continue
		}
		item.IsCurrent = item.Year == year
		r.store.seasons[id] = item
	}
	return flagged, nil
}

func (r *SeasonRepository) ListTeamCounts(_ context.Context) ([]season.TeamCount, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	teamsBySeason := make(map[int64]int)
	for key := range r.store.standings {
		teamsBySeason[key.seasonID]++
	}

	out := make([]season.TeamCount, 0, len(r.store.seasons))
	for id := range r.store.seasons {
		item, leagueName, ok := r.store.seasonOf(id)
		if !ok {
			continue
		}
		out = append(out, season.TeamCount{
			LeagueName: leagueName,
			Year:       item.Year,
			IsCurrent:  item.IsCurrent,
			Teams:      teamsBySeason[id],
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].LeagueName != out[j].LeagueName {
			return out[i].LeagueName < out[j].LeagueName
		}
		return out[i].Year > out[j].Year
	})
	return out, nil
}

func (r *SeasonRepository) Count(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.seasons), nil
}
