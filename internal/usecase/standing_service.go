package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-101/internal/domain/standing"
)

type StandingsQuery struct {
	League string
	Season *int
}

type StandingsResult struct {
	League string
	Season int
	Items  []standing.Standing
}

type StandingService struct {
	defaults     QueryDefaults
	standingRepo standing.Repository
}

func NewStandingService(defaults QueryDefaults, standingRepo standing.Repository) *StandingService {
	return &StandingService{
		defaults:     defaults,
		standingRepo: standingRepo,
	}
}

// GetStandings returns the table of one season ordered by rank. A season
// without rows yields an empty result.
func (s *StandingService) GetStandings(ctx context.Context, query StandingsQuery) (StandingsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.GetStandings")
	defer span.End()

	leagueName := s.defaults.league(query.League)
	year := s.defaults.season(query.Season)
	if year <= 0 {
		return StandingsResult{}, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}

	items, err := s.standingRepo.ListBySeason(ctx, leagueName, year)
	if err != nil {
		return StandingsResult{}, fmt.Errorf("list standings league=%s season=%d: %w", leagueName, year, err)
	}

	return StandingsResult{League: leagueName, Season: year, Items: nonNil(items)}, nil
}

// GetCurrentStandings reads the table of the season flagged as current.
func (s *StandingService) GetCurrentStandings(ctx context.Context, leagueName string) ([]standing.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.GetCurrentStandings")
	defer span.End()

	leagueName = s.defaults.league(leagueName)
	items, err := s.standingRepo.ListCurrent(ctx, leagueName)
	if err != nil {
		return nil, fmt.Errorf("list current standings league=%s: %w", leagueName, err)
	}

	return nonNil(items), nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
