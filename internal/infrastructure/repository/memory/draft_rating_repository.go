package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/draft-ratings/internal/domain/draft"
)

// DraftRatingRepository keeps picks in insertion order, which stands in for
// the id ordering of the SQL table.
type DraftRatingRepository struct {
	mu    sync.RWMutex
	picks []draft.Pick
}

func NewDraftRatingRepository(picks []draft.Pick) *DraftRatingRepository {
	return &DraftRatingRepository{picks: append([]draft.Pick(nil), picks...)}
}

func (r *DraftRatingRepository) InsertBatch(_ context.Context, picks []draft.Pick) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.picks = append(r.picks, picks...)
	return nil
}

func (r *DraftRatingRepository) LatestSnapshot(_ context.Context, season int) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	latest, ok := "", false
	for _, p := range r.picks {
		if p.Season != season {
			continue
		}
		if !ok || p.SnapshotTimestamp > latest {
			latest, ok = p.SnapshotTimestamp, true
		}
	}
	return latest, ok, nil
}

func (r *DraftRatingRepository) ListBySnapshot(_ context.Context, season int, snapshot string) ([]draft.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]draft.Pick, 0)
	for _, p := range r.picks {
		if p.Season == season && p.SnapshotTimestamp == snapshot {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *DraftRatingRepository) ListTeamPicks(_ context.Context, teamID int64, season int, snapshot string) ([]draft.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]draft.Pick, 0)
	for _, p := range r.picks {
		if p.TeamID == teamID && p.Season == season && p.SnapshotTimestamp == snapshot {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OverallPick < out[j].OverallPick
	})
	return out, nil
}

func (r *DraftRatingRepository) ListTeamLatestPicks(_ context.Context, teamID int64) ([]draft.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	latest := make(map[int]string)
	for _, p := range r.picks {
		if cur, ok := latest[p.Season]; !ok || p.SnapshotTimestamp > cur {
			latest[p.Season] = p.SnapshotTimestamp
		}
	}

	out := make([]draft.Pick, 0)
	for _, p := range r.picks {
		if p.TeamID == teamID && p.SnapshotTimestamp == latest[p.Season] {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Season != out[j].Season {
			return out[i].Season < out[j].Season
		}
		return out[i].OverallPick < out[j].OverallPick
	})
	return out, nil
}

func (r *DraftRatingRepository) ListLatestTeams(_ context.Context) ([]draft.TeamRef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	latest := ""
	for _, p := range r.picks {
		if p.SnapshotTimestamp > latest {
			latest = p.SnapshotTimestamp
		}
	}

	seen := make(map[draft.TeamRef]struct{})
	out := make([]draft.TeamRef, 0)
	for _, p := range r.picks {
		if p.SnapshotTimestamp != latest {
			continue
		}
		ref := draft.TeamRef{TeamID: p.TeamID, TeamName: p.TeamName}
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		out = append(out, ref)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TeamID != out[j].TeamID {
			return out[i].TeamID < out[j].TeamID
		}
		return out[i].TeamName < out[j].TeamName
	})
	return out, nil
}

func (r *DraftRatingRepository) ListSeasonPlayers(_ context.Context, season int) ([]draft.PlayerMatch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type playerKey struct {
		id   int64
		name string
	}
	seen := make(map[playerKey]struct{})
	out := make([]draft.PlayerMatch, 0)
	for _, p := range r.picks {
		if p.Season != season {
			continue
		}
		key := playerKey{id: p.PlayerID, name: p.PlayerName}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, draft.PlayerMatch{DraftName: p.PlayerName, DraftID: p.PlayerID})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DraftName != out[j].DraftName {
			return out[i].DraftName < out[j].DraftName
		}
		return out[i].DraftID < out[j].DraftID
	})
	return out, nil
}
