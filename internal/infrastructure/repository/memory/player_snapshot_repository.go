package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/draft-ratings/internal/domain/playersnapshot"
)

type snapshotKey struct {
	date     string
	playerID int64
}

type PlayerSnapshotRepository struct {
	mu   sync.RWMutex
	rows map[snapshotKey]playersnapshot.Snapshot
}

func NewPlayerSnapshotRepository(items []playersnapshot.Snapshot) *PlayerSnapshotRepository {
	repo := &PlayerSnapshotRepository{rows: make(map[snapshotKey]playersnapshot.Snapshot, len(items))}
	for _, item := range items {
		repo.rows[snapshotKey{date: item.SnapshotDate, playerID: item.PlayerID}] = item
	}
	return repo
}

func (r *PlayerSnapshotRepository) UpsertBatch(_ context.Context, items []playersnapshot.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		r.rows[snapshotKey{date: item.SnapshotDate, playerID: item.PlayerID}] = item
	}
	return nil
}

func (r *PlayerSnapshotRepository) ListLatestGamesPlayed(_ context.Context) ([]playersnapshot.GamesPlayed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	latest := ""
	for key := range r.rows {
		if key.date > latest {
			latest = key.date
		}
	}

	out := make([]playersnapshot.GamesPlayed, 0)
	for key, row := range r.rows {
		if key.date != latest {
			continue
		}
		out = append(out, playersnapshot.GamesPlayed{PlayerID: row.PlayerID, PlayerName: row.PlayerName, GP: row.GP})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PlayerID < out[j].PlayerID
	})
	return out, nil
}
