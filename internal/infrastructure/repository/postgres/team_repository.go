package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-101/internal/domain/team"
	qb "github.com/riskibarqy/football-101/internal/platform/querybuilder"
)

var teamColumns = []string{
	"t.id",
	"t.name",
	"t.code",
	"t.country",
	"t.founded",
	"t.logo_url",
	"t.venue_name",
	"t.venue_city",
}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select(teamColumns...).From("teams t").
		OrderBy("t.name", "t.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	return r.selectTeams(ctx, query, args, "select teams")
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueName string) ([]team.Team, error) {
	query, args, err := qb.Select(teamColumns...).From("teams t").
		Where(qb.Or(
			qb.Expr(`EXISTS (
    SELECT 1 FROM standings st
    JOIN seasons s ON st.season_id = s.id
    JOIN leagues l ON s.league_id = l.id
    WHERE st.team_id = t.id AND l.name = ?)`, leagueName),
			qb.Expr(`EXISTS (
    SELECT 1 FROM fixtures f
    JOIN seasons s ON f.season_id = s.id
    JOIN leagues l ON s.league_id = l.id
    WHERE (f.home_team_id = t.id OR f.away_team_id = t.id) AND l.name = ?)`, leagueName),
		)).
		OrderBy("t.name", "t.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams by league query: %w", err)
	}

	return r.selectTeams(ctx, query, args, "select teams by league")
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns...).From("teams t").
		Where(qb.Eq("t.id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team by id query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by id=%d: %w", teamID, err)
	}

	return teamFromRow(row), true, nil
}

func (r *TeamRepository) UpsertMany(ctx context.Context, items []team.Team) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert teams: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range items {
		insertModel := teamTableModel{
			ID:        item.ID,
			Name:      strings.TrimSpace(item.Name),
			Code:      ptrToNullString(item.Code),
			Country:   ptrToNullString(item.Country),
			Founded:   intPtrToNullInt64(item.Founded),
			LogoURL:   ptrToNullString(item.LogoURL),
			VenueName: ptrToNullString(item.VenueName),
			VenueCity: ptrToNullString(item.VenueCity),
		}
		query, args, err := qb.UpsertModel("teams", insertModel, []string{"id"},
			qb.CoalesceExisting("code", "country", "founded", "logo_url", "venue_name", "venue_city"),
		)
		if err != nil {
			return fmt.Errorf("build upsert team query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert team id=%d: %w", item.ID, constraintDetail(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert teams tx: %w", err)
	}
	return nil
}

func (r *TeamRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, "teams")
}

func (r *TeamRepository) selectTeams(ctx context.Context, query string, args []any, op string) ([]team.Team, error) {
	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:        row.ID,
		Name:      row.Name,
		Code:      nullStringToPtr(row.Code),
		Country:   nullStringToPtr(row.Country),
		Founded:   nullInt64ToIntPtr(row.Founded),
		LogoURL:   nullStringToPtr(row.LogoURL),
		VenueName: nullStringToPtr(row.VenueName),
		VenueCity: nullStringToPtr(row.VenueCity),
	}
}
