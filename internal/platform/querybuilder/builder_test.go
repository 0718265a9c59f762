package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "team_name").
		From("teams").
		Where(Eq("league_id", int64(7)), IsNull("owner_id")).
		OrderBy("wins DESC", "id").
		Limit(10).
		Offset(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, team_name FROM teams WHERE league_id = $1 AND owner_id IS NULL ORDER BY wins DESC, id LIMIT 10 OFFSET 20"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderEmptyInMatchesNothing(t *testing.T) {
	query, args, err := Select("id").From("teams").Where(In("sleeper_roster_id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM teams WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("weekly_scores").
		Columns("team_id", "week").
		Values(int64(1), 3).
		Suffix("ON CONFLICT (team_id, week, season) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO weekly_scores (team_id, week) VALUES ($1, $2) ON CONFLICT (team_id, week, season) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(1) || args[1] != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilderRejectsShortRow(t *testing.T) {
	_, _, err := InsertInto("teams").Columns("a", "b").Values(1).ToSQL()
	if err == nil {
		t.Fatalf("expected error for mismatched row")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("members").
		Set("full_name", "Alex").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", int64(4))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE members SET full_name = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Alex" || args[1] != int64(4) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("common_players").ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM common_players" || len(args) != 0 {
		t.Fatalf("unexpected delete: %s %+v", query, args)
	}

	query, args, err = DeleteFrom("teams").
		Where(Eq("league_id", int64(2)), Expr("sleeper_roster_id > ?", 10)).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	wantQuery := "DELETE FROM teams WHERE league_id = $1 AND sleeper_roster_id > $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

type insertModelRow struct {
	TeamID int64   `db:"team_id"`
	Week   int     `db:"week"`
	Points float64 `db:"points_scored"`
	Skip   string  `db:"-"`
	note   string
}

func TestInsertModel(t *testing.T) {
	query, args, err := InsertModel("weekly_scores", insertModelRow{TeamID: 1, Week: 2, Points: 99.5, note: "x"}, "RETURNING id")
	if err != nil {
		t.Fatalf("insert model: %v", err)
	}
	wantQuery := "INSERT INTO weekly_scores (team_id, week, points_scored) VALUES ($1, $2, $3) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

type omitEmptyRow struct {
	UserID   int64  `db:"user_id"`
	FullName string `db:"full_name,omitempty"`
}

func TestInsertModelOmitEmpty(t *testing.T) {
	query, args, err := InsertModel("members", omitEmptyRow{UserID: 4}, "")
	if err != nil {
		t.Fatalf("insert model: %v", err)
	}
	if query != "INSERT INTO members (user_id) VALUES ($1)" || len(args) != 1 {
		t.Fatalf("unexpected query %q args %+v", query, args)
	}

	query, args, err = InsertModel("members", &omitEmptyRow{UserID: 4, FullName: "Alice"}, "")
	if err != nil {
		t.Fatalf("insert model: %v", err)
	}
	if query != "INSERT INTO members (user_id, full_name) VALUES ($1, $2)" || len(args) != 2 {
		t.Fatalf("unexpected query %q args %+v", query, args)
	}
}

func TestInsertModelRejectsNonStruct(t *testing.T) {
	var nilRow *omitEmptyRow
	for _, model := range []any{nilRow, 3, struct{ A int }{A: 1}} {
		if _, _, err := InsertModel("members", model, ""); err == nil {
			t.Fatalf("expected error for %T", model)
		}
	}
}

func TestExcludedAssignments(t *testing.T) {
	got := ExcludedAssignments("points_scored", " ", "week")
	if got != "points_scored = EXCLUDED.points_scored, week = EXCLUDED.week" {
		t.Fatalf("unexpected assignments %q", got)
	}
}
