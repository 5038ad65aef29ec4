package postgres

import (
	"database/sql"
)

type teamTableModel struct {
	ID        int64          `db:"id"`
	Name      string         `db:"name"`
	Code      sql.NullString `db:"code"`
	Country   sql.NullString `db:"country"`
	Founded   sql.NullInt64  `db:"founded"`
	LogoURL   sql.NullString `db:"logo_url"`
	VenueName sql.NullString `db:"venue_name"`
	VenueCity sql.NullString `db:"venue_city"`
}
