package postgres

import (
	"database/sql"
	"time"
)

type fixtureRowModel struct {
	ID                int64          `db:"id"`
	SeasonID          int64          `db:"season_id"`
	Round             sql.NullString `db:"round"`
	Date              time.Time      `db:"date"`
	Timezone          sql.NullString `db:"timezone"`
	Venue             sql.NullString `db:"venue"`
	City              sql.NullString `db:"city"`
	Referee           sql.NullString `db:"referee"`
	HomeTeamID        int64          `db:"home_team_id"`
	HomeTeamName      string         `db:"home_team_name"`
	AwayTeamID        int64          `db:"away_team_id"`
	AwayTeamName      string         `db:"away_team_name"`
	HomeScore         sql.NullInt64  `db:"home_score"`
	AwayScore         sql.NullInt64  `db:"away_score"`
	HomeHalftimeScore sql.NullInt64  `db:"home_halftime_score"`
	AwayHalftimeScore sql.NullInt64  `db:"away_halftime_score"`
	HomeFulltimeScore sql.NullInt64  `db:"home_fulltime_score"`
	AwayFulltimeScore sql.NullInt64  `db:"away_fulltime_score"`
	Status            string         `db:"status"`
	StatusLong        sql.NullString `db:"status_long"`
	Elapsed           sql.NullInt64  `db:"elapsed"`
	LeagueName        string         `db:"league_name"`
	SeasonYear        int            `db:"season_year"`
}

type fixtureInsertModel struct {
	ID                int64          `db:"id"`
	SeasonID          int64          `db:"season_id"`
	Round             sql.NullString `db:"round"`
	Date              time.Time      `db:"date"`
	Timezone          sql.NullString `db:"timezone"`
	Venue             sql.NullString `db:"venue"`
	City              sql.NullString `db:"city"`
	Referee           sql.NullString `db:"referee"`
	HomeTeamID        int64          `db:"home_team_id"`
	AwayTeamID        int64          `db:"away_team_id"`
	HomeScore         sql.NullInt64  `db:"home_score"`
	AwayScore         sql.NullInt64  `db:"away_score"`
	HomeHalftimeScore sql.NullInt64  `db:"home_halftime_score"`
	AwayHalftimeScore sql.NullInt64  `db:"away_halftime_score"`
	HomeFulltimeScore sql.NullInt64  `db:"home_fulltime_score"`
	AwayFulltimeScore sql.NullInt64  `db:"away_fulltime_score"`
	Status            string         `db:"status"`
	StatusLong        sql.NullString `db:"status_long"`
	Elapsed           sql.NullInt64  `db:"elapsed"`
}
