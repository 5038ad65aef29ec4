package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-101/internal/domain/fixture"
)

const defaultViewLimit = 20

type FixturesQuery struct {
	League string
	Season *int
	Limit  *int
}

type FixturesResult struct {
	League string
	Season int
	Items  []fixture.Fixture
}

type FixtureService struct {
	defaults    QueryDefaults
	fixtureRepo fixture.Repository
}

func NewFixtureService(defaults QueryDefaults, fixtureRepo fixture.Repository) *FixtureService {
	return &FixtureService{
		defaults:    defaults,
		fixtureRepo: fixtureRepo,
	}
}

// GetFixtures returns the fixtures of one season by kickoff date. Without a
// limit every fixture of the season is returned.
func (s *FixtureService) GetFixtures(ctx context.Context, query FixturesQuery) (FixturesResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.GetFixtures")
	defer span.End()

	leagueName := s.defaults.league(query.League)
	year := s.defaults.season(query.Season)
	if year <= 0 {
		return FixturesResult{}, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}
	limit, err := resolveLimit(query.Limit, 0)
	if err != nil {
		return FixturesResult{}, err
	}

	items, err := s.fixtureRepo.ListBySeason(ctx, leagueName, year, limit)
	if err != nil {
		return FixturesResult{}, fmt.Errorf("list fixtures league=%s season=%d: %w", leagueName, year, err)
	}

	return FixturesResult{League: leagueName, Season: year, Items: nonNil(items)}, nil
}

func (s *FixtureService) GetUpcomingFixtures(ctx context.Context, leagueName string, limit *int) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.GetUpcomingFixtures")
	defer span.End()

	leagueName = s.defaults.league(leagueName)
	n, err := resolveLimit(limit, defaultViewLimit)
	if err != nil {
		return nil, err
	}

	items, err := s.fixtureRepo.ListUpcoming(ctx, leagueName, n)
	if err != nil {
		return nil, fmt.Errorf("list upcoming fixtures league=%s: %w", leagueName, err)
	}
	return nonNil(items), nil
}

func (s *FixtureService) GetRecentResults(ctx context.Context, leagueName string, limit *int) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.GetRecentResults")
	defer span.End()

	leagueName = s.defaults.league(leagueName)
	n, err := resolveLimit(limit, defaultViewLimit)
	if err != nil {
		return nil, err
	}

	items, err := s.fixtureRepo.ListRecentResults(ctx, leagueName, n)
	if err != nil {
		return nil, fmt.Errorf("list recent results league=%s: %w", leagueName, err)
	}
	return nonNil(items), nil
}

func resolveLimit(limit *int, fallback int) (int, error) {
	if limit == nil {
		return fallback, nil
	}
	if *limit <= 0 {
		return 0, fmt.Errorf("%w: limit must be greater than zero", ErrInvalidInput)
	}
	return *limit, nil
}
