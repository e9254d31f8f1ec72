package memory

import (
	"time"

	"github.com/riskibarqy/draft-ratings/internal/domain/draft"
	"github.com/riskibarqy/draft-ratings/internal/domain/playersnapshot"
	"github.com/riskibarqy/draft-ratings/internal/domain/transaction"
)

const (
	SeedSeason         = 2025
	SeedPriorSeason    = 2024
	SeedSnapshotEarly  = "2024-10-29T00:00"
	SeedSnapshotLatest = "2024-11-05T00:00"
	SeedPriorSnapshot  = "2023-11-01T00:00"
	SeedPlayerSnapshot = "2024-11-05"
)

type seedPick struct {
	round, overall int
	playerID       int64
	player         string
	teamID         int64
	team           string
	verdict        string
	roundAvg, ppg  float64
}

var seedPicks2025 = []seedPick{
	{1, 1, 203999, "Nikola Jokic", 1, "Paint Beasts", "Fair", 44.2, 61.3},
	{1, 2, 1629029, "Luka Doncic", 2, "Splash Bros", "Reach", 44.2, 38.4},
	{1, 3, 1628983, "Shai Gilgeous-Alexander", 3, "Fast Breakers", "Value", 44.2, 52.0},
	{1, 4, 1641705, "Victor Wembanyama", 4, "Rim Runners", "Steal", 44.2, 55.7},
	{2, 5, 1630162, "Anthony Edwards", 4, "Rim Runners", "Fair", 36.8, 41.9},
	{2, 6, 1628369, "Jayson Tatum", 3, "Fast Breakers", "Fair", 36.8, 43.1},
	{2, 7, 203507, "Giannis Antetokounmpo", 2, "Splash Bros", "Steal", 36.8, 58.2},
	{2, 8, 1627759, "Jaylen Brown", 1, "Paint Beasts", "Bust", 36.8, 22.5},
	{3, 9, 1630595, "Cade Cunningham", 1, "Paint Beasts", "Value", 31.5, 40.2},
	{3, 10, 1631094, "Paolo Banchero", 2, "Splash Bros", "No Verdict", 31.5, 30.0},
	{3, 11, 1630169, "Tyrese Haliburton", 3, "Fast Breakers", "Reach", 31.5, 27.4},
	{3, 12, 1629627, "Zion Williamson", 4, "Rim Runners", "No Verdict", 31.5, 0},
}

var seedPicks2024 = []seedPick{
	{1, 1, 203999, "Nikola Jokic", 1, "Paint Beasts", "Value", 43.0, 58.9},
	{1, 2, 1628983, "Shai Gilgeous-Alexander", 2, "Splash Bros", "Steal", 43.0, 54.1},
	{1, 3, 1629029, "Luka Doncic", 3, "Fast Breaks", "Fair", 43.0, 45.7},
	{1, 4, 203507, "Giannis Antetokounmpo", 4, "Rim Runners", "Fair", 43.0, 47.3},
}

// SeedDraftPicks returns two snapshots of the 2025 draft plus one snapshot
// of the 2024 draft. The early 2025 snapshot predates most verdicts.
func SeedDraftPicks() []draft.Pick {
	out := make([]draft.Pick, 0, 2*len(seedPicks2025)+len(seedPicks2024))
	for _, p := range seedPicks2025 {
		early := p.toPick(SeedSeason, SeedSnapshotEarly)
		early.Verdict = "No Verdict"
		out = append(out, early)
	}
	for _, p := range seedPicks2025 {
		out = append(out, p.toPick(SeedSeason, SeedSnapshotLatest))
	}
	for _, p := range seedPicks2024 {
		out = append(out, p.toPick(SeedPriorSeason, SeedPriorSnapshot))
	}
	return out
}

func (p seedPick) toPick(season int, snapshot string) draft.Pick {
	return draft.Pick{
		SnapshotTimestamp:               snapshot,
		Season:                          season,
		PickNumber:                      p.overall - (p.round-1)*4,
		Round:                           p.round,
		OverallPick:                     p.overall,
		PlayerID:                        p.playerID,
		PlayerName:                      p.player,
		TeamID:                          p.teamID,
		TeamName:                        p.team,
		Verdict:                         p.verdict,
		DraftRoundFantasyPerGameAverage: p.roundAvg,
		FantasyPointsPerGame:            p.ppg,
	}
}

func SeedTransactions() []transaction.Transaction {
	team := func(id string) *string { return &id }
	at := func(day, hour int) time.Time {
		return time.Date(2024, time.October, day, hour, 0, 0, 0, time.UTC)
	}

	return []transaction.Transaction{
		{SnapshotDate: "2024-10-25", TransacTeam: team("1"), TransacDate: at(23, 14), TransacType: "WAIVER_ADDED", PlayerInfo: "Jalen Johnson ATL SF"},
		{SnapshotDate: "2024-10-25", TransacTeam: team("1"), TransacDate: at(23, 14), TransacType: "DROPPED", PlayerInfo: "Jaylen Brown BOS SG", RelatedTransaction: true},
		{SnapshotDate: "2024-10-25", TransacTeam: team("3"), TransacDate: at(24, 9), TransacType: "FREEAGENT_ADDED", PlayerInfo: "Dyson Daniels ATL SG"},
		{SnapshotDate: "2024-10-27", TransacTeam: team("9"), TransacDate: at(26, 20), TransacType: "DROPPED", PlayerInfo: "Marcus Smart MEM PG"},
		{SnapshotDate: "2024-11-01", TransacTeam: team("2"), TransacDate: at(30, 18), TransacType: "WAIVER_ADDED", PlayerInfo: "Norman Powell LAC SG"},
		{SnapshotDate: "2024-11-01", TransacDate: at(31, 7), TransacType: "TRADED", PlayerInfo: "Bam Adebayo MIA C"},
	}
}

func SeedPlayerSnapshots() []playersnapshot.Snapshot {
	rows := []struct {
		id   int64
		name string
		gp   int
		pts  float64
	}{
		{203999, "Nikola Jokić", 8, 29.7},
		{1629029, "Luka Dončić", 7, 28.1},
		{1628983, "Shai Gilgeous-Alexander", 8, 30.6},
		{1641705, "Victor Wembanyama", 6, 24.3},
		{1630162, "Anthony Edwards", 8, 27.9},
		{1628369, "Jayson Tatum", 8, 28.3},
		{203507, "Giannis Antetokounmpo", 7, 32.4},
		{1627759, "Jaylen Brown", 5, 23.1},
		{1630595, "Cade Cunningham", 8, 22.6},
		{1630169, "Tyrese Haliburton", 7, 15.4},
	}

	out := make([]playersnapshot.Snapshot, 0, len(rows))
	for _, row := range rows {
		out = append(out, playersnapshot.Snapshot{
			SnapshotDate: SeedPlayerSnapshot,
			PlayerID:     row.id,
			PlayerName:   row.name,
			GP:           row.gp,
			Pts:          row.pts,
		})
	}
	return out
}
