package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/football-101/internal/domain/team"
)

type TeamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]team.Team, 0, len(r.store.teams))
	for _, item := range r.store.teams {
		out = append(out, item)
	}
	sortTeamsByName(out)
	return out, nil
}

func (r *TeamRepository) ListByLeague(_ context.Context, leagueName string) ([]team.Team, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	linked := make(map[int64]struct{})
	for key := range r.store.standings {
		if _, name, ok := r.store.seasonOf(key.seasonID); ok && name == leagueName {
			linked[key.teamID] = struct{}{}
		}
	}
	for _, item := range r.store.fixtures {
		if _, name, ok := r.store.seasonOf(item.SeasonID); ok && name == leagueName {
			linked[item.HomeTeamID] = struct{}{}
			linked[item.AwayTeamID] = struct{}{}
		}
	}

	out := make([]team.Team, 0, len(linked))
	for id := range linked {
		if item, ok := r.store.teams[id]; ok {
			out = append(out, item)
		}
	}
	sortTeamsByName(out)
	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.teams[teamID]
	if !ok {
		return team.Team{}, false, nil
	}
	return item, true, nil
}

func (r *TeamRepository) UpsertMany(_ context.Context, items []team.Team) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, item := range items {
		if existing, ok := r.store.teams[item.ID]; ok {
			item = mergeTeam(existing, item)
		}
		r.store.teams[item.ID] = item
	}
	return nil
}

func (r *TeamRepository) Count(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.teams), nil
}

// mergeTeam keeps stored optional fields the incoming row leaves empty.
func mergeTeam(existing, incoming team.Team) team.Team {
	if incoming.Code == nil {
		incoming.Code = existing.Code
	}
	if incoming.Country == nil {
		incoming.Country = existing.Country
	}
	if incoming.Founded == nil {
		incoming.Founded = existing.Founded
	}
	if incoming.LogoURL == nil {
		incoming.LogoURL = existing.LogoURL
	}
	if incoming.VenueName == nil {
		incoming.VenueName = existing.VenueName
	}
	if incoming.VenueCity == nil {
		incoming.VenueCity = existing.VenueCity
	}
	return incoming
}

func sortTeamsByName(items []team.Team) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
}
