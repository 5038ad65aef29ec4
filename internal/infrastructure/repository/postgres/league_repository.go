package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-101/internal/domain/league"
	qb "github.com/riskibarqy/football-101/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) Upsert(ctx context.Context, item league.League) error {
	insertModel := leagueInsertModel{
		ID:      item.ID,
		Name:    strings.TrimSpace(item.Name),
		Type:    nonEmptyNullString(item.Type),
		Country: nonEmptyNullString(item.Country),
		LogoURL: ptrToNullString(item.LogoURL),
	}
	query, args, err := qb.UpsertModel("leagues", insertModel, []string{"id"})
	if err != nil {
		return fmt.Errorf("build upsert league query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert league id=%d: %w", item.ID, err)
	}

	return nil
}

func (r *LeagueRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, "leagues")
}

func nonEmptyNullString(v string) sql.NullString {
	v = strings.TrimSpace(v)
	if v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}

func countRows(ctx context.Context, db *sqlx.DB, table string) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From(table).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count %s query: %w", table, err)
	}

	var total int
	if err := db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return total, nil
}
