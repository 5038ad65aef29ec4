package postgres

import (
	"database/sql"
)

type standingRowModel struct {
	SeasonID         int64          `db:"season_id"`
	TeamID           int64          `db:"team_id"`
	TeamName         string         `db:"team_name"`
	TeamLogo         sql.NullString `db:"team_logo"`
	Rank             int            `db:"rank"`
	Points           int            `db:"points"`
	Played           int            `db:"played"`
	Wins             int            `db:"wins"`
	Draws            int            `db:"draws"`
	Losses           int            `db:"losses"`
	GoalsFor         int            `db:"goals_for"`
	GoalsAgainst     int            `db:"goals_against"`
	GoalDifference   int            `db:"goal_difference"`
	HomePlayed       int            `db:"home_played"`
	HomeWins         int            `db:"home_wins"`
	HomeDraws        int            `db:"home_draws"`
	HomeLosses       int            `db:"home_losses"`
	HomeGoalsFor     int            `db:"home_goals_for"`
	HomeGoalsAgainst int            `db:"home_goals_against"`
	AwayPlayed       int            `db:"away_played"`
	AwayWins         int            `db:"away_wins"`
	AwayDraws        int            `db:"away_draws"`
	AwayLosses       int            `db:"away_losses"`
	AwayGoalsFor     int            `db:"away_goals_for"`
	AwayGoalsAgainst int            `db:"away_goals_against"`
	Form             sql.NullString `db:"form"`
	Description      sql.NullString `db:"description"`
	LeagueName       string         `db:"league_name"`
	SeasonYear       int            `db:"season_year"`
}

type standingInsertModel struct {
	SeasonID         int64          `db:"season_id"`
	TeamID           int64          `db:"team_id"`
	Rank             int            `db:"rank"`
	Points           int            `db:"points"`
	Played           int            `db:"played"`
	Wins             int            `db:"wins"`
	Draws            int            `db:"draws"`
	Losses           int            `db:"losses"`
	GoalsFor         int            `db:"goals_for"`
	GoalsAgainst     int            `db:"goals_against"`
	GoalDifference   int            `db:"goal_difference"`
	HomePlayed       int            `db:"home_played"`
	HomeWins         int            `db:"home_wins"`
	HomeDraws        int            `db:"home_draws"`
	HomeLosses       int            `db:"home_losses"`
	HomeGoalsFor     int            `db:"home_goals_for"`
	HomeGoalsAgainst int            `db:"home_goals_against"`
	AwayPlayed       int            `db:"away_played"`
	AwayWins         int            `db:"away_wins"`
	AwayDraws        int            `db:"away_draws"`
	AwayLosses       int            `db:"away_losses"`
	AwayGoalsFor     int            `db:"away_goals_for"`
	AwayGoalsAgainst int            `db:"away_goals_against"`
	Form             sql.NullString `db:"form"`
	Description      sql.NullString `db:"description"`
}
