package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("event_id", "team_id", "position", "points").
		From("results_team").
		Where(Eq("event_id", int64(7))).
		OrderBy("position").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT event_id, team_id, position, points FROM results_team WHERE event_id = $1 ORDER BY position"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilderMultiRow(t *testing.T) {
	query, args, err := InsertInto("results_team").
		Columns("event_id", "team_id", "position", "points").
		Values(int64(7), int64(1), 1, 20).
		Values(int64(7), int64(2), 2, 10).
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO results_team (event_id, team_id, position, points) VALUES ($1, $2, $3, $4), ($5, $6, $7, $8)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 8 || args[0] != int64(7) || args[5] != int64(2) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilderRowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("teams").
		Columns("id", "name").
		Values(int64(1)).
		ToSQL()
	if err == nil {
		t.Fatal("expected error for row narrower than columns")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("results_individual").
		Set("mvp", true).
		Where(Eq("event_id", int64(7)), Eq("player_id", int64(3))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE results_individual SET mvp = $1 WHERE event_id = $2 AND player_id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != true || args[2] != int64(3) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("results_individual").
		Where(Eq("event_id", int64(7))).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM results_individual WHERE event_id = $1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilderRequiresWhere(t *testing.T) {
	_, _, err := DeleteFrom("results_team").ToSQL()
	if err == nil {
		t.Fatal("expected error for delete without conditions")
	}
}

func TestInEmptyValuesNeverMatches(t *testing.T) {
	query, args, err := Select("id").
		From("players").
		Where(In("team_id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM players WHERE 1=0"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}
