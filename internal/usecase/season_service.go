package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-101/internal/domain/season"
)

type SeasonService struct {
	defaults   QueryDefaults
	seasonRepo season.Repository
}

func NewSeasonService(defaults QueryDefaults, seasonRepo season.Repository) *SeasonService {
	return &SeasonService{
		defaults:   defaults,
		seasonRepo: seasonRepo,
	}
}

// ListSeasons returns the seasons of a league, newest first. An unknown
// league yields an empty list.
func (s *SeasonService) ListSeasons(ctx context.Context, leagueName string) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ListSeasons")
	defer span.End()

	leagueName = s.defaults.league(leagueName)
	items, err := s.seasonRepo.ListByLeague(ctx, leagueName)
	if err != nil {
		return nil, fmt.Errorf("list seasons league=%s: %w", leagueName, err)
	}

	return items, nil
}

// SetCurrent flags one season of a league as current and clears the flag
// on the others.
func (s *SeasonService) SetCurrent(ctx context.Context, leagueName string, year int) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.SetCurrent")
	defer span.End()

	if year <= 0 {
		return 0, fmt.Errorf("%w: season year must be greater than zero", ErrInvalidInput)
	}
	leagueName = s.defaults.league(leagueName)

	flagged, err := s.seasonRepo.SetCurrent(ctx, leagueName, year)
	if err != nil {
		return 0, fmt.Errorf("set current season league=%s year=%d: %w", leagueName, year, err)
	}
	if flagged == 0 {
		return 0, fmt.Errorf("%w: season league=%s year=%d", ErrNotFound, leagueName, year)
	}

	return flagged, nil
}
