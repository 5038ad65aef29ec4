package querybuilder

import "testing"

func assertQuery(t *testing.T, got, want string) {
	t.Helper()
	if got != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, got)
	}
}

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("s.id", "s.year").
		From("seasons s").
		Join("leagues l", "s.league_id = l.id").
		Where(Eq("l.name", "Premier League"), Expr("s.year >= ?", 2020)).
		OrderBy("s.year DESC").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	assertQuery(t, query, "SELECT s.id, s.year FROM seasons s JOIN leagues l ON s.league_id = l.id WHERE l.name = $1 AND s.year >= $2 ORDER BY s.year DESC LIMIT 10")
	if len(args) != 2 || args[0] != "Premier League" || args[1] != 2020 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_GroupByAndLeftJoin(t *testing.T) {
	query, _, err := Select("s.id", "COUNT(st.team_id)").
		From("seasons s").
		LeftJoin("standings st", "st.season_id = s.id").
		GroupBy("s.id").
		Limit(0).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	assertQuery(t, query, "SELECT s.id, COUNT(st.team_id) FROM seasons s LEFT JOIN standings st ON st.season_id = s.id GROUP BY s.id")
}

func TestSelectBuilder_Errors(t *testing.T) {
	if _, _, err := Select().From("standings").ToSQL(); err == nil {
		t.Fatalf("expected error without columns")
	}
	if _, _, err := Select("*").ToSQL(); err == nil {
		t.Fatalf("expected error without table")
	}
	if _, _, err := Select("*").From("standings").Join("teams", "").ToSQL(); err == nil {
		t.Fatalf("expected error for join without condition")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("seasons").
		Set("is_current", true).
		Where(Expr("league_id IN (SELECT id FROM leagues WHERE name = ?)", "Premier League"), Eq("year", 2024)).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	assertQuery(t, query, "UPDATE seasons SET is_current = $1 WHERE league_id IN (SELECT id FROM leagues WHERE name = $2) AND year = $3")
	if len(args) != 3 || args[0] != true || args[2] != 2024 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := Update("seasons").ToSQL(); err == nil {
		t.Fatalf("expected error without sets")
	}
}

func TestOrCondition_NumbersPlaceholdersInOrder(t *testing.T) {
	query, args, err := Select("t.id").
		From("teams t").
		Where(
			Or(
				Expr("EXISTS (SELECT 1 FROM standings st WHERE st.team_id = t.id AND st.season_id = ?)", 7),
				Expr("EXISTS (SELECT 1 FROM fixtures f WHERE f.home_team_id = t.id AND f.season_id = ?)", 7),
			),
			Eq("t.country", "England"),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build or query: %v", err)
	}

	assertQuery(t, query, "SELECT t.id FROM teams t WHERE (EXISTS (SELECT 1 FROM standings st WHERE st.team_id = t.id AND st.season_id = $1) OR EXISTS (SELECT 1 FROM fixtures f WHERE f.home_team_id = t.id AND f.season_id = $2)) AND t.country = $3")
	if len(args) != 3 || args[2] != "England" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestOrCondition_EmptyMatchesNothing(t *testing.T) {
	query, _, err := Select("id").From("teams").Where(Or()).ToSQL()
	if err != nil {
		t.Fatalf("build query: %v", err)
	}
	assertQuery(t, query, "SELECT id FROM teams WHERE 1=0")
}

func TestExpr_SurplusMarkersKept(t *testing.T) {
	query, args, err := Select("id").From("teams").Where(Expr("name = ? OR code = ?", "Arsenal")).ToSQL()
	if err != nil {
		t.Fatalf("build query: %v", err)
	}
	assertQuery(t, query, "SELECT id FROM teams WHERE name = $1 OR code = ?")
	if len(args) != 1 {
		t.Fatalf("unexpected args: %+v", args)
	}
}
