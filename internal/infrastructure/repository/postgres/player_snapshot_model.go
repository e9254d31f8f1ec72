package postgres

import "database/sql"

type playerSnapshotTableModel struct {
	SnapshotDate     string         `db:"snapshot_date"`
	PlayerID         int64          `db:"player_id"`
	PlayerName       string         `db:"player_name"`
	TeamID           sql.NullInt64  `db:"team_id"`
	TeamAbbreviation sql.NullString `db:"team_abbreviation"`
	Age              float64        `db:"age"`
	GP               int            `db:"gp"`
	Min              float64        `db:"min"`
	Pts              float64        `db:"pts"`
	FGM              float64        `db:"fgm"`
	FGA              float64        `db:"fga"`
	FGPct            float64        `db:"fg_pct"`
	FG3M             float64        `db:"fg3m"`
	FG3A             float64        `db:"fg3a"`
	FG3Pct           float64        `db:"fg3_pct"`
	FTM              float64        `db:"ftm"`
	FTA              float64        `db:"fta"`
	FTPct            float64        `db:"ft_pct"`
	Reb              float64        `db:"reb"`
	Ast              float64        `db:"ast"`
	Stl              float64        `db:"stl"`
	Blk              float64        `db:"blk"`
	Tov              float64        `db:"tov"`
}

type gamesPlayedModel struct {
	PlayerID   int64  `db:"player_id"`
	PlayerName string `db:"player_name"`
	GP         int    `db:"gp"`
}
