package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-101/internal/domain/season"
	qb "github.com/riskibarqy/football-101/internal/platform/querybuilder"
)

var seasonColumns = []string{
	"s.id",
	"s.league_id",
	"l.name AS league_name",
	"s.year",
	"s.start_date",
	"s.end_date",
	"s.is_current",
}

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) ListByLeague(ctx context.Context, leagueName string) ([]season.Season, error) {
	query, args, err := qb.Select(seasonColumns...).From("seasons s").
		Join("leagues l", "s.league_id = l.id").
		Where(qb.Eq("l.name", leagueName)).
		OrderBy("s.year DESC", "s.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select seasons by league query: %w", err)
	}

	var rows []seasonRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select seasons by league: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonFromRow(row))
	}

	return out, nil
}

func (r *SeasonRepository) GetByLeagueAndYear(ctx context.Context, leagueName string, year int) (season.Season, bool, error) {
	query, args, err := qb.Select(seasonColumns...).From("seasons s").
		Join("leagues l", "s.league_id = l.id").
		Where(
			qb.Eq("l.name", leagueName),
			qb.Eq("s.year", year),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build get season query: %w", err)
	}

	var row seasonRowModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get season league=%s year=%d: %w", leagueName, year, err)
	}

	return seasonFromRow(row), true, nil
}

func (r *SeasonRepository) Upsert(ctx context.Context, item season.Season) (int64, error) {
	insertModel := seasonInsertModel{
		LeagueID:  item.LeagueID,
		Year:      item.Year,
		StartDate: ptrToNullTime(item.StartDate),
		EndDate:   ptrToNullTime(item.EndDate),
		IsCurrent: item.IsCurrent,
	}
	query, args, err := qb.UpsertModel("seasons", insertModel, []string{"league_id", "year"}, qb.Returning("id"))
	if err != nil {
		return 0, fmt.Errorf("build upsert season query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("upsert season league_id=%d year=%d: %w", item.LeagueID, item.Year, constraintDetail(err))
	}

	return id, nil
}

func (r *SeasonRepository) SetCurrent(ctx context.Context, leagueName string, year int) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx set current season: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	leagueFilter := qb.Expr("league_id IN (SELECT id FROM leagues WHERE name = ?)", leagueName)

	clearQuery, clearArgs, err := qb.Update("seasons").
		Set("is_current", false).
		Where(leagueFilter, qb.Eq("is_current", true)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build clear current season query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return 0, fmt.Errorf("clear current season league=%s: %w", leagueName, err)
	}

	setQuery, setArgs, err := qb.Update("seasons").
		Set("is_current", true).
		Where(leagueFilter, qb.Eq("year", year)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build set current season query: %w", err)
	}
	res, err := tx.ExecContext(ctx, setQuery, setArgs...)
	if err != nil {
		return 0, fmt.Errorf("set current season league=%s year=%d: %w", leagueName, year, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read set current season result: %w", err)
	}
	if affected == 0 {
		return 0, nil
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit set current season tx: %w", err)
	}
	return affected, nil
}

func (r *SeasonRepository) ListTeamCounts(ctx context.Context) ([]season.TeamCount, error) {
	query, args, err := qb.Select(
		"l.name AS league_name",
		"s.year",
		"s.is_current",
		"COUNT(st.id) AS teams",
	).From("seasons s").
		Join("leagues l", "s.league_id = l.id").
		LeftJoin("standings st", "st.season_id = s.id").
		GroupBy("l.name", "s.year", "s.is_current").
		OrderBy("l.name", "s.year DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build season team counts query: %w", err)
	}

	var rows []seasonTeamCountModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select season team counts: %w", err)
	}

	out := make([]season.TeamCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, season.TeamCount{
			LeagueName: row.LeagueName,
			Year:       row.Year,
			IsCurrent:  row.IsCurrent,
			Teams:      row.Teams,
		})
	}
	return out, nil
}

func (r *SeasonRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, "seasons")
}

func seasonFromRow(row seasonRowModel) season.Season {
	return season.Season{
		ID:         row.ID,
		LeagueID:   row.LeagueID,
		LeagueName: row.LeagueName,
		Year:       row.Year,
		StartDate:  nullTimeToPtr(row.StartDate),
		EndDate:    nullTimeToPtr(row.EndDate),
		IsCurrent:  row.IsCurrent,
	}
}
