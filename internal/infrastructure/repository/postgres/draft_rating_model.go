package postgres

type draftRatingTableModel struct {
	SnapshotTimestamp               string  `db:"snapshot_timestamp"`
	Season                          int     `db:"season"`
	PickNumber                      int     `db:"pick_number"`
	Round                           int     `db:"round"`
	OverallPick                     int     `db:"overall_pick"`
	PlayerID                        int64   `db:"player_id"`
	PlayerName                      string  `db:"player_name"`
	TeamID                          int64   `db:"team_id"`
	TeamName                        string  `db:"team_name"`
	Verdict                         string  `db:"verdict"`
	DraftRoundFantasyPerGameAverage float64 `db:"draft_round_fantasy_per_game_average"`
	FantasyPointsPerGame            float64 `db:"fantasy_points_per_game"`
}

type draftTeamModel struct {
	TeamID   int64  `db:"team_id"`
	TeamName string `db:"team_name"`
}

type draftPlayerModel struct {
	PlayerID   int64  `db:"player_id"`
	PlayerName string `db:"player_name"`
}
