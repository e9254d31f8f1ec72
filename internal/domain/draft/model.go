package draft

// Pick is one drafted player as rated in one snapshot. Rows are append-only;
// a new snapshot adds a new version of every pick.
type Pick struct {
	SnapshotTimestamp               string
	Season                          int
	PickNumber                      int
	Round                           int
	OverallPick                     int
	PlayerID                        int64
	PlayerName                      string
	TeamID                          int64
	TeamName                        string
	Verdict                         string
	DraftRoundFantasyPerGameAverage float64
	FantasyPointsPerGame            float64
}

// ParsedVerdict returns the closed verdict for the raw label.
func (p Pick) ParsedVerdict() Verdict {
	v, _ := ParseVerdict(p.Verdict)
	return v
}

// TeamAggregate is computed on read over one (season, snapshot) partition.
// AverageRating is nil when no pick in the group carries a scored verdict.
type TeamAggregate struct {
	TeamID           int64
	TeamName         string
	TotalPicks       int
	AverageRating    *float64
	AvgPointsPerPick float64
	WeightedPPG      float64
	TotalPoints      float64
	GamesPlayed      int
}

// TeamRef is a team identity as carried on draft rows.
type TeamRef struct {
	TeamID   int64
	TeamName string
}

// LifetimeSummary covers a team's picks across every season, each season
// read at its own latest snapshot.
type LifetimeSummary struct {
	TeamID         int64
	TeamName       string
	TotalPicks     int
	LifetimeRating *float64
	LifetimePPG    float64
	SeasonsDrafted int
}

// PlayerMatch pairs a drafted player with games played from the latest
// player snapshot, matched by normalized name.
type PlayerMatch struct {
	DraftName   string
	DraftID     int64
	GamesPlayed int
}
