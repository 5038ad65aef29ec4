package postgres

import (
	"database/sql"
)

type leagueInsertModel struct {
	ID      int64          `db:"id"`
	Name    string         `db:"name"`
	Type    sql.NullString `db:"type"`
	Country sql.NullString `db:"country"`
	LogoURL sql.NullString `db:"logo_url"`
}
