package draft

import "testing"

func pick(teamID int64, teamName, verdict string, ppg float64, player string) Pick {
	return Pick{
		Season:               2025,
		SnapshotTimestamp:    "2024-10-29T00:00",
		TeamID:               teamID,
		TeamName:             teamName,
		Verdict:              verdict,
		FantasyPointsPerGame: ppg,
		PlayerName:           player,
	}
}

func TestAggregate_StealAndBustAverageToTwo(t *testing.T) {
	got := Aggregate([]Pick{
		pick(1, "Hoopers", "Steal", 40, "a"),
		pick(1, "Hoopers", "Bust", 20, "b"),
	}, nil)

	if len(got) != 1 {
		t.Fatalf("expected 1 team, got %d", len(got))
	}
	if got[0].AverageRating == nil || *got[0].AverageRating != 2.00 {
		t.Fatalf("expected average rating 2.00, got %v", got[0].AverageRating)
	}
	if got[0].TotalPicks != 2 {
		t.Fatalf("expected 2 picks, got %d", got[0].TotalPicks)
	}
	if got[0].AvgPointsPerPick != 30 {
		t.Fatalf("expected avg ppg 30, got %v", got[0].AvgPointsPerPick)
	}
}

func TestAggregate_AllUnratedIsNil(t *testing.T) {
	got := Aggregate([]Pick{
		pick(1, "Hoopers", "No Verdict", 10, "a"),
		pick(1, "Hoopers", "No Verdict", 12, "b"),
	}, nil)

	if got[0].AverageRating != nil {
		t.Fatalf("expected nil rating for unrated team, got %v", *got[0].AverageRating)
	}
}

func TestAggregate_UnratedExcludedFromMean(t *testing.T) {
	got := Aggregate([]Pick{
		pick(1, "Hoopers", "Steal", 10, "a"),
		pick(1, "Hoopers", "No Verdict", 10, "b"),
		pick(1, "Hoopers", "Value", 10, "c"),
	}, nil)

	if got[0].AverageRating == nil || *got[0].AverageRating != 3.5 {
		t.Fatalf("expected 3.5, got %v", got[0].AverageRating)
	}
}

func TestAggregate_SortsDescendingWithNilLast(t *testing.T) {
	got := Aggregate([]Pick{
		pick(1, "Unrated", "No Verdict", 10, "a"),
		pick(2, "Low", "Reach", 10, "b"),
		pick(3, "High", "Steal", 10, "c"),
		pick(4, "TiedFirst", "Fair", 10, "d"),
		pick(5, "TiedSecond", "Fair", 10, "e"),
	}, nil)

	wantOrder := []string{"High", "TiedFirst", "TiedSecond", "Low", "Unrated"}
	if len(got) != len(wantOrder) {
		t.Fatalf("expected %d teams, got %d", len(wantOrder), len(got))
	}
	for i, name := range wantOrder {
		if got[i].TeamName != name {
			t.Fatalf("position %d: got %s want %s", i, got[i].TeamName, name)
		}
	}
}

func TestAggregate_GroupsByIDAndName(t *testing.T) {
	got := Aggregate([]Pick{
		pick(1, "Old Name", "Steal", 10, "a"),
		pick(1, "New Name", "Bust", 10, "b"),
	}, nil)

	if len(got) != 2 {
		t.Fatalf("expected two groups for differing names, got %d", len(got))
	}
}

func TestAggregate_WeightedAndTotalPoints(t *testing.T) {
	games := map[string]int{"a": 10, "b": 30}
	got := Aggregate([]Pick{
		pick(1, "Hoopers", "Fair", 40, "a"),
		pick(1, "Hoopers", "Fair", 20, "b"),
		pick(1, "Hoopers", "Fair", 99, "unmatched"),
	}, func(p Pick) int { return games[p.PlayerName] })

	agg := got[0]
	// (40*10 + 20*30) / 40 = 25
	if agg.WeightedPPG != 25 {
		t.Fatalf("expected weighted ppg 25, got %v", agg.WeightedPPG)
	}
	if agg.TotalPoints != 1000 {
		t.Fatalf("expected total points 1000, got %v", agg.TotalPoints)
	}
	if agg.GamesPlayed != 40 {
		t.Fatalf("expected 40 games, got %d", agg.GamesPlayed)
	}
	if agg.SecondaryMetric(EvalWeightedPPG) != 25 || agg.SecondaryMetric(EvalTotalPoints) != 1000 {
		t.Fatalf("unexpected secondary metrics: %+v", agg)
	}
	if agg.SecondaryMetric(EvalAveragePPG) != agg.AvgPointsPerPick {
		t.Fatalf("expected average metric to surface avg ppg")
	}
}

func TestAggregate_NoGamesYieldsZeroWeighted(t *testing.T) {
	got := Aggregate([]Pick{pick(1, "Hoopers", "Fair", 40, "a")}, func(Pick) int { return 0 })
	if got[0].WeightedPPG != 0 || got[0].TotalPoints != 0 {
		t.Fatalf("expected zero weighted metrics, got %+v", got[0])
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	got := Aggregate(nil, nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestAggregate_SameOrderForEveryMethod(t *testing.T) {
	picks := []Pick{
		pick(1, "A", "Reach", 50, "a"),
		pick(2, "B", "Steal", 5, "b"),
		pick(3, "C", "No Verdict", 90, "c"),
	}
	first := Aggregate(picks, nil)
	second := Aggregate(picks, func(Pick) int { return 82 })
	for i := range first {
		if first[i].TeamID != second[i].TeamID {
			t.Fatalf("order differs at %d: %d vs %d", i, first[i].TeamID, second[i].TeamID)
		}
	}
}

func TestSummarize(t *testing.T) {
	picks := []Pick{
		{Season: 2024, TeamID: 7, TeamName: "Old", Verdict: "Steal", DraftRoundFantasyPerGameAverage: 30},
		{Season: 2025, TeamID: 7, TeamName: "New", Verdict: "Bust", DraftRoundFantasyPerGameAverage: 21},
		{Season: 2025, TeamID: 7, TeamName: "New", Verdict: "No Verdict", DraftRoundFantasyPerGameAverage: 20},
	}

	got, ok := Summarize(7, picks)
	if !ok {
		t.Fatalf("expected summary")
	}
	if got.TeamName != "New" {
		t.Fatalf("expected latest season name, got %s", got.TeamName)
	}
	if got.TotalPicks != 3 || got.SeasonsDrafted != 2 {
		t.Fatalf("unexpected counts: %+v", got)
	}
	if got.LifetimeRating == nil || *got.LifetimeRating != 2 {
		t.Fatalf("expected lifetime rating 2, got %v", got.LifetimeRating)
	}
	if got.LifetimePPG != 23.7 {
		t.Fatalf("expected lifetime ppg 23.7, got %v", got.LifetimePPG)
	}

	if _, ok := Summarize(7, nil); ok {
		t.Fatalf("expected no summary for empty picks")
	}
}

func TestRound(t *testing.T) {
	if got := Round(2.346, 2); got != 2.35 {
		t.Fatalf("Round(2.346, 2)=%v", got)
	}
	if got := Round(23.666, 1); got != 23.7 {
		t.Fatalf("Round(23.666, 1)=%v", got)
	}
}
