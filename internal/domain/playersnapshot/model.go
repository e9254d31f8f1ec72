package playersnapshot

// Snapshot is one player's season line as of SnapshotDate (YYYY-MM-DD).
// (SnapshotDate, PlayerID) is unique; reloading the key overwrites the row.
type Snapshot struct {
	SnapshotDate     string
	PlayerID         int64
	PlayerName       string
	TeamID           *int64
	TeamAbbreviation *string
	Age              float64
	GP               int
	Min              float64
	Pts              float64
	FGM              float64
	FGA              float64
	FGPct            float64
	FG3M             float64
	FG3A             float64
	FG3Pct           float64
	FTM              float64
	FTA              float64
	FTPct            float64
	Reb              float64
	Ast              float64
	Stl              float64
	Blk              float64
	Tov              float64
}

// GamesPlayed is the slice of a snapshot the rating reports need.
type GamesPlayed struct {
	PlayerID   int64
	PlayerName string
	GP         int
}
