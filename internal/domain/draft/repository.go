package draft

import "context"

// Repository describes draft rating persistence needs from use cases.
type Repository interface {
	// InsertBatch writes all picks or none of them.
	InsertBatch(ctx context.Context, picks []Pick) error
	// LatestSnapshot returns the greatest snapshot_timestamp for season;
	// false means the season has no rows.
	LatestSnapshot(ctx context.Context, season int) (string, bool, error)
	ListBySnapshot(ctx context.Context, season int, snapshot string) ([]Pick, error)
	// ListTeamPicks returns one team's picks in a partition by overall pick.
	ListTeamPicks(ctx context.Context, teamID int64, season int, snapshot string) ([]Pick, error)
	// ListTeamLatestPicks returns one team's picks for every season, each
	// season restricted to its own latest snapshot.
	ListTeamLatestPicks(ctx context.Context, teamID int64) ([]Pick, error)
	// ListLatestTeams returns the distinct teams in the globally newest
	// snapshot.
	ListLatestTeams(ctx context.Context) ([]TeamRef, error)
	// ListSeasonPlayers returns distinct (player_id, player_name) pairs
	// drafted in season across all snapshots.
	ListSeasonPlayers(ctx context.Context, season int) ([]PlayerMatch, error)
}
