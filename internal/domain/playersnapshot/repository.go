package playersnapshot

import "context"

// Repository exposes player snapshot persistence.
type Repository interface {
	// UpsertBatch writes every snapshot keyed by (snapshot_date, player_id)
	// in one transaction; existing keys take the new values.
	UpsertBatch(ctx context.Context, items []Snapshot) error
	// ListLatestGamesPlayed returns games played from the newest snapshot
	// date, ordered by player_id.
	ListLatestGamesPlayed(ctx context.Context) ([]GamesPlayed, error)
}
