package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-101/internal/domain/fixture"
	qb "github.com/riskibarqy/football-101/internal/platform/querybuilder"
)

var fixtureColumns = []string{
	"id",
	"season_id",
	"round",
	"date",
	"timezone",
	"venue",
	"city",
	"referee",
	"home_team_id",
	"away_team_id",
	"home_score",
	"away_score",
	"home_halftime_score",
	"away_halftime_score",
	"home_fulltime_score",
	"away_fulltime_score",
	"status",
	"status_long",
	"elapsed",
}

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) ListBySeason(ctx context.Context, leagueName string, year int, limit int) ([]fixture.Fixture, error) {
	columns := prefixed("f.", fixtureColumns)
	columns = append(columns,
		"ht.name AS home_team_name",
		"at.name AS away_team_name",
		"l.name AS league_name",
		"s.year AS season_year",
	)

	query, args, err := qb.Select(columns...).From("fixtures f").
		Join("teams ht", "f.home_team_id = ht.id").
		Join("teams at", "f.away_team_id = at.id").
		Join("seasons s", "f.season_id = s.id").
		Join("leagues l", "s.league_id = l.id").
		Where(
			qb.Eq("l.name", leagueName),
			qb.Eq("s.year", year),
		).
		OrderBy("f.date", "f.id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures query: %w", err)
	}

	return r.selectFixtures(ctx, query, args, "select fixtures")
}

func (r *FixtureRepository) ListUpcoming(ctx context.Context, leagueName string, limit int) ([]fixture.Fixture, error) {
	query, args, err := r.viewQuery("upcoming_fixtures", leagueName, "date", limit)
	if err != nil {
		return nil, fmt.Errorf("build select upcoming fixtures query: %w", err)
	}

	return r.selectFixtures(ctx, query, args, "select upcoming fixtures")
}

func (r *FixtureRepository) ListRecentResults(ctx context.Context, leagueName string, limit int) ([]fixture.Fixture, error) {
	query, args, err := r.viewQuery("recent_results", leagueName, "date DESC", limit)
	if err != nil {
		return nil, fmt.Errorf("build select recent results query: %w", err)
	}

	return r.selectFixtures(ctx, query, args, "select recent results")
}

func (r *FixtureRepository) viewQuery(view, leagueName, order string, limit int) (string, []any, error) {
	columns := append([]string{}, fixtureColumns...)
	columns = append(columns, "home_team_name", "away_team_name", "league_name", "season_year")

	return qb.Select(columns...).From(view).
		Where(qb.Eq("league_name", leagueName)).
		OrderBy(order, "id").
		Limit(limit).
		ToSQL()
}

func (r *FixtureRepository) UpsertMany(ctx context.Context, seasonID int64, items []fixture.Fixture) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert fixtures: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range items {
		insertModel := fixtureInsertModel{
			ID:                item.ID,
			SeasonID:          seasonID,
			Round:             nonEmptyNullString(item.Round),
			Date:              item.Date.UTC(),
			Timezone:          ptrToNullString(item.Timezone),
			Venue:             ptrToNullString(item.Venue),
			City:              ptrToNullString(item.City),
			Referee:           ptrToNullString(item.Referee),
			HomeTeamID:        item.HomeTeamID,
			AwayTeamID:        item.AwayTeamID,
			HomeScore:         intPtrToNullInt64(item.Goals.Home),
			AwayScore:         intPtrToNullInt64(item.Goals.Away),
			HomeHalftimeScore: intPtrToNullInt64(item.Halftime.Home),
			AwayHalftimeScore: intPtrToNullInt64(item.Halftime.Away),
			HomeFulltimeScore: intPtrToNullInt64(item.Fulltime.Home),
			AwayFulltimeScore: intPtrToNullInt64(item.Fulltime.Away),
			Status:            fixture.NormalizeStatus(item.Status),
			StatusLong:        ptrToNullString(item.StatusLong),
			Elapsed:           intPtrToNullInt64(item.Elapsed),
		}
		query, args, err := qb.UpsertModel("fixtures", insertModel, []string{"id"})
		if err != nil {
			return fmt.Errorf("build upsert fixture query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert fixture id=%d: %w", item.ID, constraintDetail(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert fixtures tx: %w", err)
	}
	return nil
}

func (r *FixtureRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, "fixtures")
}

func (r *FixtureRepository) selectFixtures(ctx context.Context, query string, args []any, op string) ([]fixture.Fixture, error) {
	var rows []fixtureRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, fixture.Fixture{
			ID:           row.ID,
			SeasonID:     row.SeasonID,
			Round:        nullStringValue(row.Round),
			Date:         row.Date,
			Timezone:     nullStringToPtr(row.Timezone),
			Venue:        nullStringToPtr(row.Venue),
			City:         nullStringToPtr(row.City),
			Referee:      nullStringToPtr(row.Referee),
			HomeTeamID:   row.HomeTeamID,
			HomeTeamName: row.HomeTeamName,
			AwayTeamID:   row.AwayTeamID,
			AwayTeamName: row.AwayTeamName,
			Goals: fixture.Score{
				Home: nullInt64ToIntPtr(row.HomeScore),
				Away: nullInt64ToIntPtr(row.AwayScore),
			},
			Halftime: fixture.Score{
				Home: nullInt64ToIntPtr(row.HomeHalftimeScore),
				Away: nullInt64ToIntPtr(row.AwayHalftimeScore),
			},
			Fulltime: fixture.Score{
				Home: nullInt64ToIntPtr(row.HomeFulltimeScore),
				Away: nullInt64ToIntPtr(row.AwayFulltimeScore),
			},
			Status:     strings.TrimSpace(row.Status),
			StatusLong: nullStringToPtr(row.StatusLong),
			Elapsed:    nullInt64ToIntPtr(row.Elapsed),
			LeagueName: row.LeagueName,
			SeasonYear: row.SeasonYear,
		})
	}
	return out, nil
}

func nullStringValue(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}
