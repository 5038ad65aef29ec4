package postgres

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/riskibarqy/football-101/internal/domain/fixture"
	"github.com/riskibarqy/football-101/internal/domain/season"
	"github.com/riskibarqy/football-101/internal/domain/standing"
	"github.com/riskibarqy/football-101/internal/domain/team"
)

func TestStandingRepository_ListBySeason(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewStandingRepository(db)

	form := "WWDWW"
	mock.ExpectQuery(regexp.QuoteMeta("FROM standings st JOIN teams t ON st.team_id = t.id JOIN seasons s ON st.season_id = s.id JOIN leagues l ON s.league_id = l.id WHERE l.name = $1 AND s.year = $2 ORDER BY st.rank, st.team_id")).
		WithArgs("Premier League", 2024).
		WillReturnRows(sqlmock.NewRows([]string{
			"season_id", "team_id", "team_name", "team_logo", "rank", "points", "played", "goal_difference", "form", "league_name", "season_year",
		}).
			AddRow(1, 40, "Liverpool", "https://media.example/40.png", 1, 84, 38, 45, form, "Premier League", 2024).
			AddRow(1, 42, "Arsenal", nil, 2, 74, 38, 35, nil, "Premier League", 2024))

	got, err := repo.ListBySeason(context.Background(), "Premier League", 2024)
	if err != nil {
		t.Fatalf("list standings: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 standings, got %d", len(got))
	}
	if got[0].TeamName != "Liverpool" || got[0].Rank != 1 || got[0].Overall.Played != 38 {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
	if got[0].Form == nil || *got[0].Form != form {
		t.Fatalf("expected form to pass through, got %v", got[0].Form)
	}
	if got[1].Form != nil || got[1].TeamLogoURL != nil {
		t.Fatalf("expected null form and logo for second row: %+v", got[1])
	}
	expectationsMet(t, mock)
}

func TestStandingRepository_ListCurrentReadsView(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewStandingRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM current_standings WHERE league_name = $1 ORDER BY rank, team_id")).
		WithArgs("Premier League").
		WillReturnRows(sqlmock.NewRows([]string{"team_id", "team_name", "rank"}))

	got, err := repo.ListCurrent(context.Background(), "Premier League")
	if err != nil {
		t.Fatalf("list current standings: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
	expectationsMet(t, mock)
}

func TestStandingRepository_UpsertManyRollsBackOnConstraint(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewStandingRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO standings (season_id, team_id, rank")).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "standings_team_id_fkey"})
	mock.ExpectRollback()

	err := repo.UpsertMany(context.Background(), 1, []standing.Standing{{TeamID: 99, Rank: 1}})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "standings_team_id_fkey") {
		t.Fatalf("expected constraint in error, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestStandingRepository_UpsertManyCommits(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewStandingRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (season_id, team_id) DO UPDATE SET rank = EXCLUDED.rank")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO standings")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	items := []standing.Standing{
		{TeamID: 40, Rank: 1, Points: 84},
		{TeamID: 42, Rank: 2, Points: 74},
	}
	if err := repo.UpsertMany(context.Background(), 1, items); err != nil {
		t.Fatalf("upsert standings: %v", err)
	}
	expectationsMet(t, mock)
}

func TestFixtureRepository_ListBySeasonAppliesLimit(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewFixtureRepository(db)

	kickoff := time.Date(2099, time.August, 16, 19, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE l.name = $1 AND s.year = $2 ORDER BY f.date, f.id LIMIT 5")).
		WithArgs("Premier League", 2024).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "season_id", "round", "date", "venue", "home_team_id", "home_team_name", "away_team_id", "away_team_name", "home_score", "away_score", "status",
		}).AddRow(1001, 1, "Regular Season - 1", kickoff, "Anfield", 40, "Liverpool", 42, "Arsenal", nil, nil, "NS"))

	got, err := repo.ListBySeason(context.Background(), "Premier League", 2024, 5)
	if err != nil {
		t.Fatalf("list fixtures: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 fixture, got %d", len(got))
	}
	item := got[0]
	if item.Goals.Home != nil || item.Goals.Away != nil {
		t.Fatalf("expected null scores, got %+v", item.Goals)
	}
	if item.Status != fixture.StatusNotStarted || !item.Date.Equal(kickoff) {
		t.Fatalf("unexpected fixture: %+v", item)
	}
	if item.Venue == nil || *item.Venue != "Anfield" || item.City != nil {
		t.Fatalf("unexpected venue fields: %+v", item)
	}
	expectationsMet(t, mock)
}

func TestFixtureRepository_ListRecentResultsOrdersNewestFirst(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewFixtureRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM recent_results WHERE league_name = $1 ORDER BY date DESC, id LIMIT 20")).
		WithArgs("Premier League").
		WillReturnRows(sqlmock.NewRows([]string{"id", "home_score", "away_score", "status"}).AddRow(900, 2, 1, "FT"))

	got, err := repo.ListRecentResults(context.Background(), "Premier League", 20)
	if err != nil {
		t.Fatalf("list recent results: %v", err)
	}
	if len(got) != 1 || got[0].Goals.Home == nil || *got[0].Goals.Home != 2 {
		t.Fatalf("unexpected results: %+v", got)
	}
	expectationsMet(t, mock)
}

func TestFixtureRepository_UpsertManyNormalizesStatus(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewFixtureRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO fixtures")).
		WithArgs(
			int64(1001), int64(1), "Regular Season - 1", sqlmock.AnyArg(), nil, nil, nil, nil,
			int64(40), int64(42), nil, nil, nil, nil, nil, nil, "NS", nil, nil,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	items := []fixture.Fixture{{
		ID:         1001,
		Round:      "Regular Season - 1",
		Date:       time.Date(2099, time.August, 16, 19, 0, 0, 0, time.UTC),
		HomeTeamID: 40,
		AwayTeamID: 42,
	}}
	if err := repo.UpsertMany(context.Background(), 1, items); err != nil {
		t.Fatalf("upsert fixtures: %v", err)
	}
	expectationsMet(t, mock)
}

func TestFixtureRepository_Count(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewFixtureRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM fixtures")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	got, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("count fixtures: %v", err)
	}
	if got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	expectationsMet(t, mock)
}

func TestTeamRepository_GetByIDNotFound(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewTeamRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM teams t WHERE t.id = $1")).
		WithArgs(99999).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, found, err := repo.GetByID(context.Background(), 99999)
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if found {
		t.Fatalf("expected team to be missing")
	}
	expectationsMet(t, mock)
}

func TestTeamRepository_ListByLeagueMatchesStandingsOrFixtures(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewTeamRepository(db)

	mock.ExpectQuery(`FROM teams t WHERE \(EXISTS \(.*FROM standings st.*l\.name = \$1\) OR EXISTS \(.*FROM fixtures f.*l\.name = \$2\)\) ORDER BY t\.name, t\.id`).
		WithArgs("Premier League", "Premier League").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "logo_url"}).
			AddRow(42, "Arsenal", nil).
			AddRow(40, "Liverpool", "https://media.example/40.png"))

	got, err := repo.ListByLeague(context.Background(), "Premier League")
	if err != nil {
		t.Fatalf("list teams by league: %v", err)
	}
	want := []team.Team{{ID: 42, Name: "Arsenal"}, {ID: 40, Name: "Liverpool"}}
	if len(got) != len(want) {
		t.Fatalf("expected %d teams, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Name != want[i].Name {
			t.Fatalf("unexpected team at %d: %+v", i, got[i])
		}
	}
	expectationsMet(t, mock)
}

func TestTeamRepository_UpsertManySkipsEmptyBatch(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewTeamRepository(db)

	if err := repo.UpsertMany(context.Background(), nil); err != nil {
		t.Fatalf("upsert empty batch: %v", err)
	}
	expectationsMet(t, mock)
}

func TestSeasonRepository_ListByLeagueNewestFirst(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewSeasonRepository(db)

	start, end := season.DefaultWindow(2024)
	mock.ExpectQuery(regexp.QuoteMeta("FROM seasons s JOIN leagues l ON s.league_id = l.id WHERE l.name = $1 ORDER BY s.year DESC, s.id")).
		WithArgs("Premier League").
		WillReturnRows(sqlmock.NewRows([]string{"id", "league_id", "league_name", "year", "start_date", "end_date", "is_current"}).
			AddRow(2, 39, "Premier League", 2024, start, end, true).
			AddRow(1, 39, "Premier League", 2023, nil, nil, false))

	got, err := repo.ListByLeague(context.Background(), "Premier League")
	if err != nil {
		t.Fatalf("list seasons: %v", err)
	}
	if len(got) != 2 || got[0].Year != 2024 || !got[0].IsCurrent {
		t.Fatalf("unexpected seasons: %+v", got)
	}
	if got[0].StartDate == nil || !got[0].StartDate.Equal(start) {
		t.Fatalf("unexpected start date: %v", got[0].StartDate)
	}
	if got[1].StartDate != nil {
		t.Fatalf("expected null start date for 2023")
	}
	expectationsMet(t, mock)
}

func TestSeasonRepository_UpsertReturnsID(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewSeasonRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (league_id, year) DO UPDATE SET start_date = EXCLUDED.start_date")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	id, err := repo.Upsert(context.Background(), season.Season{LeagueID: 39, Year: 2024, IsCurrent: true})
	if err != nil {
		t.Fatalf("upsert season: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected id 7, got %d", id)
	}
	expectationsMet(t, mock)
}

func TestSeasonRepository_SetCurrentClearsOtherSeasons(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewSeasonRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE seasons SET is_current = $1 WHERE league_id IN (SELECT id FROM leagues WHERE name = $2) AND is_current = $3")).
		WithArgs(false, "Premier League", true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE seasons SET is_current = $1 WHERE league_id IN (SELECT id FROM leagues WHERE name = $2) AND year = $3")).
		WithArgs(true, "Premier League", 2024).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	affected, err := repo.SetCurrent(context.Background(), "Premier League", 2024)
	if err != nil {
		t.Fatalf("set current: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 season flagged, got %d", affected)
	}
	expectationsMet(t, mock)
}

func TestSeasonRepository_SetCurrentUnknownYearRollsBack(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewSeasonRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE seasons SET is_current = $1")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE seasons SET is_current = $1")).
		WithArgs(true, "Premier League", 1999).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	affected, err := repo.SetCurrent(context.Background(), "Premier League", 1999)
	if err != nil {
		t.Fatalf("set current: %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected no season flagged, got %d", affected)
	}
	expectationsMet(t, mock)
}

func TestSeasonRepository_ListTeamCounts(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewSeasonRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN standings st ON st.season_id = s.id GROUP BY l.name, s.year, s.is_current")).
		WillReturnRows(sqlmock.NewRows([]string{"league_name", "year", "is_current", "teams"}).
			AddRow("Premier League", 2024, true, 20))

	got, err := repo.ListTeamCounts(context.Background())
	if err != nil {
		t.Fatalf("list team counts: %v", err)
	}
	if len(got) != 1 || got[0].Teams != 20 || !got[0].IsCurrent {
		t.Fatalf("unexpected counts: %+v", got)
	}
	expectationsMet(t, mock)
}
