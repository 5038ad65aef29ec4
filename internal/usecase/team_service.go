package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-101/internal/domain/team"
)

type TeamService struct {
	teamRepo team.Repository
}

func NewTeamService(teamRepo team.Repository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

// ListTeams returns every team when leagueName is empty, otherwise the teams
// that appear in the league's standings or fixtures.
func (s *TeamService) ListTeams(ctx context.Context, leagueName string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	leagueName = strings.TrimSpace(leagueName)
	if leagueName == "" {
		items, err := s.teamRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list teams: %w", err)
		}
		return nonNil(items), nil
	}

	items, err := s.teamRepo.ListByLeague(ctx, leagueName)
	if err != nil {
		return nil, fmt.Errorf("list teams by league=%s: %w", leagueName, err)
	}
	return nonNil(items), nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	if teamID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team id=%d: %w", teamID, err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team with id %d", ErrNotFound, teamID)
	}

	return item, nil
}
