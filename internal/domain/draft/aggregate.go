package draft

import (
	"math"
	"sort"
)

// GamesPlayedFunc resolves games played for a pick, 0 when unknown.
type GamesPlayedFunc func(Pick) int

type teamKey struct {
	id   int64
	name string
}

type accumulator struct {
	agg         TeamAggregate
	scoreSum    float64
	scoreCount  int
	ppgSum      float64
	gamesSum    int
	weightedSum float64
}

// Aggregate groups picks by (team_id, team_name) and computes one row per
// group, sorted by rating descending with unrated teams last. Groups with
// equal ratings keep the order in which they first appear in picks.
func Aggregate(picks []Pick, gamesPlayed GamesPlayedFunc) []TeamAggregate {
	if len(picks) == 0 {
		return []TeamAggregate{}
	}

	order := make([]teamKey, 0)
	groups := make(map[teamKey]*accumulator)
	for _, p := range picks {
		key := teamKey{id: p.TeamID, name: p.TeamName}
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{agg: TeamAggregate{TeamID: p.TeamID, TeamName: p.TeamName}}
			groups[key] = acc
			order = append(order, key)
		}

		acc.agg.TotalPicks++
		if score, ok := Score(p.Verdict); ok {
			acc.scoreSum += score
			acc.scoreCount++
		}
		acc.ppgSum += p.FantasyPointsPerGame

		if gamesPlayed != nil {
			gp := gamesPlayed(p)
			if gp > 0 {
				acc.gamesSum += gp
				acc.weightedSum += p.FantasyPointsPerGame * float64(gp)
			}
		}
	}

	out := make([]TeamAggregate, 0, len(order))
	for _, key := range order {
		acc := groups[key]
		agg := acc.agg
		if acc.scoreCount > 0 {
			rating := Round(acc.scoreSum/float64(acc.scoreCount), 2)
			agg.AverageRating = &rating
		}
		agg.AvgPointsPerPick = Round(acc.ppgSum/float64(agg.TotalPicks), 1)
		agg.GamesPlayed = acc.gamesSum
		agg.TotalPoints = Round(acc.weightedSum, 1)
		if acc.gamesSum > 0 {
			agg.WeightedPPG = Round(acc.weightedSum/float64(acc.gamesSum), 1)
		}
		out = append(out, agg)
	}

	SortByRating(out)
	return out
}

// SortByRating orders aggregates by rating descending, nil ratings last.
// The sort is stable.
func SortByRating(items []TeamAggregate) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].AverageRating, items[j].AverageRating
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a > *b
		}
	})
}

// MeanRating averages the scored verdicts of picks, nil when none is scored.
func MeanRating(picks []Pick) *float64 {
	var sum float64
	var n int
	for _, p := range picks {
		if score, ok := Score(p.Verdict); ok {
			sum += score
			n++
		}
	}
	if n == 0 {
		return nil
	}
	rating := Round(sum/float64(n), 2)
	return &rating
}

// Summarize builds the lifetime view for one team. picks must already be
// restricted to each season's latest snapshot.
func Summarize(teamID int64, picks []Pick) (LifetimeSummary, bool) {
	if len(picks) == 0 {
		return LifetimeSummary{TeamID: teamID}, false
	}

	out := LifetimeSummary{TeamID: teamID, TotalPicks: len(picks)}
	seasons := make(map[int]struct{})
	latestSeason := math.MinInt
	var roundAvgSum float64
	for _, p := range picks {
		seasons[p.Season] = struct{}{}
		roundAvgSum += p.DraftRoundFantasyPerGameAverage
		if p.Season >= latestSeason {
			latestSeason = p.Season
			out.TeamName = p.TeamName
		}
	}
	out.SeasonsDrafted = len(seasons)
	out.LifetimeRating = MeanRating(picks)
	out.LifetimePPG = Round(roundAvgSum/float64(len(picks)), 1)
	return out, true
}

// Round rounds half away from zero to the given number of decimals.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
