package postgres

type eventTableModel struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	IsTeamGame bool   `db:"is_team_game"`
}

type teamTableModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type playerTableModel struct {
	ID     int64  `db:"id"`
	Name   string `db:"name"`
	TeamID int64  `db:"team_id"`
}

type teamResultTableModel struct {
	EventID  int64 `db:"event_id"`
	TeamID   int64 `db:"team_id"`
	Position int   `db:"position"`
	Points   int   `db:"points"`
}

type individualResultTableModel struct {
	EventID  int64 `db:"event_id"`
	PlayerID int64 `db:"player_id"`
	Position int   `db:"position"`
	Points   int   `db:"points"`
	MVP      bool  `db:"mvp"`
}
