package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/football-101/internal/domain/fixture"
	"github.com/riskibarqy/football-101/internal/domain/league"
	"github.com/riskibarqy/football-101/internal/domain/season"
	"github.com/riskibarqy/football-101/internal/domain/standing"
	"github.com/riskibarqy/football-101/internal/domain/team"
)

const (
	LeagueIDPremierLeague = 39
	TeamIDLiverpool       = 40
	TeamIDArsenal         = 42
	FixtureIDOpeningDay   = 1208021
	SeedSeasonYear        = 2024
)

// NewSeededStore returns a store holding a small Premier League dataset:
// one current season, two teams, their table rows and one unplayed fixture
// a week after now.
func NewSeededStore(now time.Time) (*Store, error) {
	store := NewStore().WithClock(func() time.Time { return now })
	if err := Seed(context.Background(), store, now); err != nil {
		return nil, err
	}
	return store, nil
}

func Seed(ctx context.Context, store *Store, now time.Time) error {
	leagues := NewLeagueRepository(store)
	seasons := NewSeasonRepository(store)
	teams := NewTeamRepository(store)
	standings := NewStandingRepository(store)
	fixtures := NewFixtureRepository(store)

	if err := leagues.Upsert(ctx, league.League{
		ID:      LeagueIDPremierLeague,
		Name:    "Premier League",
		Type:    league.TypeLeague,
		Country: "England",
		LogoURL: strPtr("https://media.api-sports.io/football/leagues/39.png"),
	}); err != nil {
		return fmt.Errorf("seed league: %w", err)
	}

	start, end := season.DefaultWindow(SeedSeasonYear)
	seasonID, err := seasons.Upsert(ctx, season.Season{
		LeagueID:  LeagueIDPremierLeague,
		Year:      SeedSeasonYear,
		StartDate: &start,
		EndDate:   &end,
		IsCurrent: true,
	})
	if err != nil {
		return fmt.Errorf("seed season: %w", err)
	}

	if err := teams.UpsertMany(ctx, SeedTeams()); err != nil {
		return fmt.Errorf("seed teams: %w", err)
	}

	if err := standings.UpsertMany(ctx, seasonID, []standing.Standing{
		{
			TeamID:         TeamIDLiverpool,
			Rank:           1,
			Points:         84,
			Overall:        standing.Record{Played: 38, Wins: 25, Draws: 9, Losses: 4, GoalsFor: 86, GoalsAgainst: 41},
			Home:           standing.Record{Played: 19, Wins: 14, Draws: 4, Losses: 1, GoalsFor: 42, GoalsAgainst: 16},
			Away:           standing.Record{Played: 19, Wins: 11, Draws: 5, Losses: 3, GoalsFor: 44, GoalsAgainst: 25},
			GoalDifference: 45,
			Form:           strPtr("DLDLW"),
			Description:    strPtr("Promotion - Champions League (League phase)"),
		},
		{
			TeamID:         TeamIDArsenal,
			Rank:           2,
			Points:         74,
			Overall:        standing.Record{Played: 38, Wins: 20, Draws: 14, Losses: 4, GoalsFor: 69, GoalsAgainst: 34},
			Home:           standing.Record{Played: 19, Wins: 11, Draws: 7, Losses: 1, GoalsFor: 35, GoalsAgainst: 17},
			Away:           standing.Record{Played: 19, Wins: 9, Draws: 7, Losses: 3, GoalsFor: 34, GoalsAgainst: 17},
			GoalDifference: 35,
			Form:           strPtr("WDLDW"),
			Description:    strPtr("Promotion - Champions League (League phase)"),
		},
	}); err != nil {
		return fmt.Errorf("seed standings: %w", err)
	}

	if err := fixtures.UpsertMany(ctx, seasonID, []fixture.Fixture{
		{
			ID:         FixtureIDOpeningDay,
			Round:      "Regular Season - 1",
			Date:       now.Add(7 * 24 * time.Hour).Truncate(time.Hour).UTC(),
			Timezone:   strPtr("UTC"),
			Venue:      strPtr("Anfield"),
			City:       strPtr("Liverpool"),
			HomeTeamID: TeamIDLiverpool,
			AwayTeamID: TeamIDArsenal,
			Status:     fixture.StatusNotStarted,
			StatusLong: strPtr("Not Started"),
		},
	}); err != nil {
		return fmt.Errorf("seed fixtures: %w", err)
	}

	return nil
}

func SeedTeams() []team.Team {
	return []team.Team{
		{
			ID:        TeamIDLiverpool,
			Name:      "Liverpool",
			Code:      strPtr("LIV"),
			Country:   strPtr("England"),
			Founded:   intPtr(1892),
			LogoURL:   strPtr("https://media.api-sports.io/football/teams/40.png"),
			VenueName: strPtr("Anfield"),
			VenueCity: strPtr("Liverpool"),
		},
		{
			ID:        TeamIDArsenal,
			Name:      "Arsenal",
			Code:      strPtr("ARS"),
			Country:   strPtr("England"),
			Founded:   intPtr(1886),
			LogoURL:   strPtr("https://media.api-sports.io/football/teams/42.png"),
			VenueName: strPtr("Emirates Stadium"),
			VenueCity: strPtr("London"),
		},
	}
}

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }
