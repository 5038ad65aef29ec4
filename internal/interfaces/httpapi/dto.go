package httpapi

import (
	"time"

	"github.com/riskibarqy/football-101/internal/domain/fixture"
	"github.com/riskibarqy/football-101/internal/domain/season"
	"github.com/riskibarqy/football-101/internal/domain/standing"
	"github.com/riskibarqy/football-101/internal/domain/team"
)

const dateLayout = "2006-01-02"

type seasonDTO struct {
	ID         int64   `json:"id"`
	Year       int     `json:"year"`
	StartDate  *string `json:"start_date"`
	EndDate    *string `json:"end_date"`
	IsCurrent  bool    `json:"is_current"`
	LeagueName string  `json:"league_name"`
}

type standingDTO struct {
	Rank             int     `json:"rank"`
	ID               int64   `json:"id"`
	Team             string  `json:"team"`
	LogoURL          *string `json:"logo_url"`
	Points           int     `json:"points"`
	Played           int     `json:"played"`
	Wins             int     `json:"wins"`
	Draws            int     `json:"draws"`
	Losses           int     `json:"losses"`
	GoalsFor         int     `json:"goals_for"`
	GoalsAgainst     int     `json:"goals_against"`
	GoalDifference   int     `json:"goal_difference"`
	Form             *string `json:"form"`
	Description      *string `json:"description"`
	HomePlayed       int     `json:"home_played"`
	HomeWins         int     `json:"home_wins"`
	HomeDraws        int     `json:"home_draws"`
	HomeLosses       int     `json:"home_losses"`
	HomeGoalsFor     int     `json:"home_goals_for"`
	HomeGoalsAgainst int     `json:"home_goals_against"`
	AwayPlayed       int     `json:"away_played"`
	AwayWins         int     `json:"away_wins"`
	AwayDraws        int     `json:"away_draws"`
	AwayLosses       int     `json:"away_losses"`
	AwayGoalsFor     int     `json:"away_goals_for"`
	AwayGoalsAgainst int     `json:"away_goals_against"`
}

type fixtureDTO struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	Round     string  `json:"round"`
	Venue     *string `json:"venue"`
	City      *string `json:"city"`
	HomeID    int64   `json:"home_id"`
	HomeName  string  `json:"home_name"`
	AwayID    int64   `json:"away_id"`
	AwayName  string  `json:"away_name"`
	HomeScore *int    `json:"home_score"`
	AwayScore *int    `json:"away_score"`
	Status    string  `json:"status"`
}

type teamDTO struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Code      *string `json:"code"`
	Country   *string `json:"country"`
	Founded   *int    `json:"founded"`
	LogoURL   *string `json:"logo_url"`
	VenueName *string `json:"venue_name"`
	VenueCity *string `json:"venue_city"`
}

type healthDTO struct {
	Message    string `json:"message"`
	Status     string `json:"status"`
	Version    string `json:"version"`
	DataSource string `json:"data_source"`
}

func seasonToDTO(v season.Season) seasonDTO {
	return seasonDTO{
		ID:         v.ID,
		Year:       v.Year,
		StartDate:  formatDate(v.StartDate),
		EndDate:    formatDate(v.EndDate),
		IsCurrent:  v.IsCurrent,
		LeagueName: v.LeagueName,
	}
}

func standingToDTO(v standing.Standing) standingDTO {
	return standingDTO{
		Rank:             v.Rank,
		ID:               v.TeamID,
		Team:             v.TeamName,
		LogoURL:          v.TeamLogoURL,
		Points:           v.Points,
		Played:           v.Overall.Played,
		Wins:             v.Overall.Wins,
		Draws:            v.Overall.Draws,
		Losses:           v.Overall.Losses,
		GoalsFor:         v.Overall.GoalsFor,
		GoalsAgainst:     v.Overall.GoalsAgainst,
		GoalDifference:   v.GoalDifference,
		Form:             v.Form,
		Description:      v.Description,
		HomePlayed:       v.Home.Played,
		HomeWins:         v.Home.Wins,
		HomeDraws:        v.Home.Draws,
		HomeLosses:       v.Home.Losses,
		HomeGoalsFor:     v.Home.GoalsFor,
		HomeGoalsAgainst: v.Home.GoalsAgainst,
		AwayPlayed:       v.Away.Played,
		AwayWins:         v.Away.Wins,
		AwayDraws:        v.Away.Draws,
		AwayLosses:       v.Away.Losses,
		AwayGoalsFor:     v.Away.GoalsFor,
		AwayGoalsAgainst: v.Away.GoalsAgainst,
	}
}

func fixtureToDTO(v fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		ID:        v.ID,
		Date:      v.Date.UTC().Format(time.RFC3339),
		Round:     v.Round,
		Venue:     v.Venue,
		City:      v.City,
		HomeID:    v.HomeTeamID,
		HomeName:  v.HomeTeamName,
		AwayID:    v.AwayTeamID,
		AwayName:  v.AwayTeamName,
		HomeScore: v.Goals.Home,
		AwayScore: v.Goals.Away,
		Status:    fixture.NormalizeStatus(v.Status),
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:        v.ID,
		Name:      v.Name,
		Code:      v.Code,
		Country:   v.Country,
		Founded:   v.Founded,
		LogoURL:   v.LogoURL,
		VenueName: v.VenueName,
		VenueCity: v.VenueCity,
	}
}

func mapItems[T, D any](items []T, fn func(T) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

func formatDate(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.UTC().Format(dateLayout)
	return &formatted
}
