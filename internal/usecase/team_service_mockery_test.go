package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/football-101/internal/domain/team"
	teammock "github.com/riskibarqy/football-101/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func TestTeamService_ListTeams_WithoutLeagueListsAllUsingMockery(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo)

	teamRepo.On("List", mock.Anything).Return([]team.Team{{ID: 42, Name: "Arsenal"}, {ID: 40, Name: "Liverpool"}}, nil).Once()

	got, err := service.ListTeams(context.Background(), "  ")
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(got))
	}
}

func TestTeamService_ListTeams_ByLeagueUsingMockery(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo)

	teamRepo.On("ListByLeague", mock.Anything, "Premier League").Return(nil, nil).Once()

	got, err := service.ListTeams(context.Background(), "Premier League")
	if err != nil {
		t.Fatalf("list teams by league: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
}

func TestTeamService_GetTeam(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		teamRepo := teammock.NewRepository(t)
		service := NewTeamService(teamRepo)
		teamRepo.On("GetByID", mock.Anything, int64(40)).Return(team.Team{ID: 40, Name: "Liverpool"}, true, nil).Once()

		got, err := service.GetTeam(context.Background(), 40)
		if err != nil {
			t.Fatalf("get team: %v", err)
		}
		if got.Name != "Liverpool" {
			t.Fatalf("unexpected team: %+v", got)
		}
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		teamRepo := teammock.NewRepository(t)
		service := NewTeamService(teamRepo)
		teamRepo.On("GetByID", mock.Anything, int64(99999)).Return(team.Team{}, false, nil).Once()

		_, err := service.GetTeam(context.Background(), 99999)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if !strings.Contains(err.Error(), "team with id 99999") {
			t.Fatalf("unexpected message: %v", err)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()

		service := NewTeamService(teammock.NewRepository(t))
		if _, err := service.GetTeam(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}
