package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-101/internal/domain/fixture"
	"github.com/riskibarqy/football-101/internal/domain/league"
	"github.com/riskibarqy/football-101/internal/domain/season"
	"github.com/riskibarqy/football-101/internal/domain/standing"
	"github.com/riskibarqy/football-101/internal/domain/team"
	"github.com/sourcegraph/conc/pool"
)

const defaultSampleTeams = 5

type TableCount struct {
	Table string
	Rows  int
}

type VerifyReport struct {
	Counts      []TableCount
	Seasons     []season.TeamCount
	SampleTeams []team.Team
}

type VerifyService struct {
	leagueRepo   league.Repository
	seasonRepo   season.Repository
	teamRepo     team.Repository
	standingRepo standing.Repository
	fixtureRepo  fixture.Repository
}

func NewVerifyService(
	leagueRepo league.Repository,
	seasonRepo season.Repository,
	teamRepo team.Repository,
	standingRepo standing.Repository,
	fixtureRepo fixture.Repository,
) *VerifyService {
	return &VerifyService{
		leagueRepo:   leagueRepo,
		seasonRepo:   seasonRepo,
		teamRepo:     teamRepo,
		standingRepo: standingRepo,
		fixtureRepo:  fixtureRepo,
	}
}

// Report summarizes what the population job left in storage.
func (s *VerifyService) Report(ctx context.Context) (VerifyReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VerifyService.Report")
	defer span.End()

	counters := []struct {
		table string
		count func(context.Context) (int, error)
	}{
		{table: "leagues", count: s.leagueRepo.Count},
		{table: "seasons", count: s.seasonRepo.Count},
		{table: "teams", count: s.teamRepo.Count},
		{table: "standings", count: s.standingRepo.Count},
		{table: "fixtures", count: s.fixtureRepo.Count},
	}

	report := VerifyReport{Counts: make([]TableCount, len(counters))}
	p := pool.New().WithContext(ctx).WithCancelOnError()
	for i, counter := range counters {
		p.Go(func(ctx context.Context) error {
			rows, err := counter.count(ctx)
			if err != nil {
				return fmt.Errorf("count %s: %w", counter.table, err)
			}
			report.Counts[i] = TableCount{Table: counter.table, Rows: rows}
			return nil
		})
	}
	p.Go(func(ctx context.Context) error {
		items, err := s.seasonRepo.ListTeamCounts(ctx)
		if err != nil {
			return fmt.Errorf("list season team counts: %w", err)
		}
		report.Seasons = nonNil(items)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.teamRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list sample teams: %w", err)
		}
		if len(items) > defaultSampleTeams {
			items = items[:defaultSampleTeams]
		}
		report.SampleTeams = nonNil(items)
		return nil
	})
	if err := p.Wait(); err != nil {
		return VerifyReport{}, err
	}

	return report, nil
}
