package memory

import (
	"sync"
	"time"

	"github.com/riskibarqy/football-101/internal/domain/fixture"
	"github.com/riskibarqy/football-101/internal/domain/league"
	"github.com/riskibarqy/football-101/internal/domain/season"
	"github.com/riskibarqy/football-101/internal/domain/standing"
	"github.com/riskibarqy/football-101/internal/domain/team"
)

type standingKey struct {
	seasonID int64
	teamID   int64
}

// Store holds every table behind one lock so repositories can resolve
// the same joins the SQL queries do.
type Store struct {
	mu           sync.RWMutex
	leagues      map[int64]league.League
	seasons      map[int64]season.Season
	nextSeasonID int64
	teams        map[int64]team.Team
	standings    map[standingKey]standing.Standing
	fixtures     map[int64]fixture.Fixture
	now          func() time.Time
}

func NewStore() *Store {
	return &Store{
		leagues:   make(map[int64]league.League),
		seasons:   make(map[int64]season.Season),
		teams:     make(map[int64]team.Team),
		standings: make(map[standingKey]standing.Standing),
		fixtures:  make(map[int64]fixture.Fixture),
		now:       time.Now,
	}
}

// WithClock replaces the clock used by the upcoming fixtures filter.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now != nil {
		s.now = now
	}
	return s
}

// seasonOf resolves the league name and year of a season. Callers hold the lock.
func (s *Store) seasonOf(seasonID int64) (season.Season, string, bool) {
	item, ok := s.seasons[seasonID]
	if !ok {
		return season.Season{}, "", false
	}
	l, ok := s.leagues[item.LeagueID]
	if !ok {
		return season.Season{}, "", false
	}
	return item, l.Name, true
}

func (s *Store) leagueIDsByName(name string) map[int64]struct{} {
	out := make(map[int64]struct{})
	for id, item := range s.leagues {
		if item.Name == name {
			out[id] = struct{}{}
		}
	}
	return out
}
