package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-101/internal/domain/standing"
	qb "github.com/riskibarqy/football-101/internal/platform/querybuilder"
)

var standingStatColumns = []string{
	"rank",
	"points",
	"played",
	"wins",
	"draws",
	"losses",
	"goals_for",
	"goals_against",
	"goal_difference",
	"home_played",
	"home_wins",
	"home_draws",
	"home_losses",
	"home_goals_for",
	"home_goals_against",
	"away_played",
	"away_wins",
	"away_draws",
	"away_losses",
	"away_goals_for",
	"away_goals_against",
	"form",
	"description",
}

type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) ListBySeason(ctx context.Context, leagueName string, year int) ([]standing.Standing, error) {
	columns := []string{"st.season_id", "st.team_id", "t.name AS team_name", "t.logo_url AS team_logo"}
	columns = append(columns, prefixed("st.", standingStatColumns)...)
	columns = append(columns, "l.name AS league_name", "s.year AS season_year")

	query, args, err := qb.Select(columns...).From("standings st").
		Join("teams t", "st.team_id = t.id").
		Join("seasons s", "st.season_id = s.id").
		Join("leagues l", "s.league_id = l.id").
		Where(
			qb.Eq("l.name", leagueName),
			qb.Eq("s.year", year),
		).
		OrderBy("st.rank", "st.team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select standings query: %w", err)
	}

	return r.selectStandings(ctx, query, args, "select standings")
}

func (r *StandingRepository) ListCurrent(ctx context.Context, leagueName string) ([]standing.Standing, error) {
	columns := []string{"season_id", "team_id", "team_name", "team_logo"}
	columns = append(columns, standingStatColumns...)
	columns = append(columns, "league_name", "season_year")

	query, args, err := qb.Select(columns...).From("current_standings").
		Where(qb.Eq("league_name", leagueName)).
		OrderBy("rank", "team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select current standings query: %w", err)
	}

	return r.selectStandings(ctx, query, args, "select current standings")
}

func (r *StandingRepository) UpsertMany(ctx context.Context, seasonID int64, items []standing.Standing) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert standings: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range items {
		insertModel := standingInsertModel{
			SeasonID:         seasonID,
			TeamID:           item.TeamID,
			Rank:             item.Rank,
			Points:           item.Points,
			Played:           item.Overall.Played,
			Wins:             item.Overall.Wins,
			Draws:            item.Overall.Draws,
			Losses:           item.Overall.Losses,
			GoalsFor:         item.Overall.GoalsFor,
			GoalsAgainst:     item.Overall.GoalsAgainst,
			GoalDifference:   item.GoalDifference,
			HomePlayed:       item.Home.Played,
			HomeWins:         item.Home.Wins,
			HomeDraws:        item.Home.Draws,
			HomeLosses:       item.Home.Losses,
			HomeGoalsFor:     item.Home.GoalsFor,
			HomeGoalsAgainst: item.Home.GoalsAgainst,
			AwayPlayed:       item.Away.Played,
			AwayWins:         item.Away.Wins,
			AwayDraws:        item.Away.Draws,
			AwayLosses:       item.Away.Losses,
			AwayGoalsFor:     item.Away.GoalsFor,
			AwayGoalsAgainst: item.Away.GoalsAgainst,
			Form:             ptrToNullString(item.Form),
			Description:      ptrToNullString(item.Description),
		}
		query, args, err := qb.UpsertModel("standings", insertModel, []string{"season_id", "team_id"})
		if err != nil {
			return fmt.Errorf("build upsert standing query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert standing season=%d team=%d: %w", seasonID, item.TeamID, constraintDetail(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert standings tx: %w", err)
	}
	return nil
}

func (r *StandingRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, "standings")
}

func (r *StandingRepository) selectStandings(ctx context.Context, query string, args []any, op string) ([]standing.Standing, error) {
	var rows []standingRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]standing.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, standing.Standing{
			SeasonID:    row.SeasonID,
			TeamID:      row.TeamID,
			TeamName:    row.TeamName,
			TeamLogoURL: nullStringToPtr(row.TeamLogo),
			Rank:        row.Rank,
			Points:      row.Points,
			Overall: standing.Record{
				Played:       row.Played,
				Wins:         row.Wins,
				Draws:        row.Draws,
				Losses:       row.Losses,
				GoalsFor:     row.GoalsFor,
				GoalsAgainst: row.GoalsAgainst,
			},
			Home: standing.Record{
				Played:       row.HomePlayed,
				Wins:         row.HomeWins,
				Draws:        row.HomeDraws,
				Losses:       row.HomeLosses,
				GoalsFor:     row.HomeGoalsFor,
				GoalsAgainst: row.HomeGoalsAgainst,
			},
			Away: standing.Record{
				Played:       row.AwayPlayed,
				Wins:         row.AwayWins,
				Draws:        row.AwayDraws,
				Losses:       row.AwayLosses,
				GoalsFor:     row.AwayGoalsFor,
				GoalsAgainst: row.AwayGoalsAgainst,
			},
			GoalDifference: row.GoalDifference,
			Form:           nullStringToPtr(row.Form),
			Description:    nullStringToPtr(row.Description),
			LeagueName:     row.LeagueName,
			SeasonYear:     row.SeasonYear,
		})
	}
	return out, nil
}

func prefixed(prefix string, columns []string) []string {
	out := make([]string, 0, len(columns))
	for _, column := range columns {
		out = append(out, prefix+strings.TrimSpace(column))
	}
	return out
}
