package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/football-101/internal/domain/season"
	"github.com/riskibarqy/football-101/internal/domain/team"
	fixturemock "github.com/riskibarqy/football-101/internal/mocks/domain/fixture"
	leaguemock "github.com/riskibarqy/football-101/internal/mocks/domain/league"
	seasonmock "github.com/riskibarqy/football-101/internal/mocks/domain/season"
	standingmock "github.com/riskibarqy/football-101/internal/mocks/domain/standing"
	teammock "github.com/riskibarqy/football-101/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func TestVerifyService_Report(t *testing.T) {
	t.Parallel()

	leagueRepo := leaguemock.NewRepository(t)
	seasonRepo := seasonmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	standingRepo := standingmock.NewRepository(t)
	fixtureRepo := fixturemock.NewRepository(t)

	leagueRepo.On("Count", mock.Anything).Return(2, nil).Once()
	seasonRepo.On("Count", mock.Anything).Return(2, nil).Once()
	teamRepo.On("Count", mock.Anything).Return(40, nil).Once()
	standingRepo.On("Count", mock.Anything).Return(40, nil).Once()
	fixtureRepo.On("Count", mock.Anything).Return(100, nil).Once()
	seasonRepo.On("ListTeamCounts", mock.Anything).
		Return([]season.TeamCount{{LeagueName: "Premier League", Year: 2024, IsCurrent: true, Teams: 20}}, nil).
		Once()

	teams := make([]team.Team, 0, 7)
	for i := 1; i <= 7; i++ {
		teams = append(teams, team.Team{ID: int64(i), Name: "Team"})
	}
	teamRepo.On("List", mock.Anything).Return(teams, nil).Once()

	service := NewVerifyService(leagueRepo, seasonRepo, teamRepo, standingRepo, fixtureRepo)
	report, err := service.Report(context.Background())
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	wantTables := []string{"leagues", "seasons", "teams", "standings", "fixtures"}
	for i, table := range wantTables {
		if report.Counts[i].Table != table {
			t.Fatalf("unexpected table at %d: %s", i, report.Counts[i].Table)
		}
	}
	if report.Counts[4].Rows != 100 {
		t.Fatalf("unexpected fixture count: %+v", report.Counts[4])
	}
	if len(report.SampleTeams) != defaultSampleTeams {
		t.Fatalf("expected %d sample teams, got %d", defaultSampleTeams, len(report.SampleTeams))
	}
	if len(report.Seasons) != 1 || report.Seasons[0].Teams != 20 {
		t.Fatalf("unexpected seasons: %+v", report.Seasons)
	}
}

func TestVerifyService_ReportFailsOnCountError(t *testing.T) {
	t.Parallel()

	leagueRepo := leaguemock.NewRepository(t)
	seasonRepo := seasonmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	standingRepo := standingmock.NewRepository(t)
	fixtureRepo := fixturemock.NewRepository(t)

	boom := errors.New("relation fixtures does not exist")
	leagueRepo.On("Count", mock.Anything).Return(0, nil).Maybe()
	seasonRepo.On("Count", mock.Anything).Return(0, nil).Maybe()
	teamRepo.On("Count", mock.Anything).Return(0, nil).Maybe()
	standingRepo.On("Count", mock.Anything).Return(0, nil).Maybe()
	fixtureRepo.On("Count", mock.Anything).Return(0, boom).Once()
	seasonRepo.On("ListTeamCounts", mock.Anything).Return(nil, nil).Maybe()
	teamRepo.On("List", mock.Anything).Return(nil, nil).Maybe()

	service := NewVerifyService(leagueRepo, seasonRepo, teamRepo, standingRepo, fixtureRepo)
	if _, err := service.Report(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected count error, got %v", err)
	}
}
