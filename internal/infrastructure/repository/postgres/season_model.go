package postgres

import (
	"database/sql"
)

type seasonRowModel struct {
	ID         int64        `db:"id"`
	LeagueID   int64        `db:"league_id"`
	LeagueName string       `db:"league_name"`
	Year       int          `db:"year"`
	StartDate  sql.NullTime `db:"start_date"`
	EndDate    sql.NullTime `db:"end_date"`
	IsCurrent  bool         `db:"is_current"`
}

type seasonInsertModel struct {
	LeagueID  int64        `db:"league_id"`
	Year      int          `db:"year"`
	StartDate sql.NullTime `db:"start_date"`
	EndDate   sql.NullTime `db:"end_date"`
	IsCurrent bool         `db:"is_current"`
}

type seasonTeamCountModel struct {
	LeagueName string `db:"league_name"`
	Year       int    `db:"year"`
	IsCurrent  bool   `db:"is_current"`
	Teams      int    `db:"teams"`
}
