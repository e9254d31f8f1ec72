package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/draft-ratings/internal/domain/playersnapshot"
	qb "github.com/riskibarqy/draft-ratings/internal/platform/querybuilder"
)

const playerSnapshotsTable = "player_snapshots"

var playerSnapshotUpsertSuffix = buildUpsertSuffix(
	[]string{"snapshot_date", "player_id"},
	qb.Columns(playerSnapshotTableModel{}),
)

type PlayerSnapshotRepository struct {
	db *sqlx.DB
}

func NewPlayerSnapshotRepository(db *sqlx.DB) *PlayerSnapshotRepository {
	return &PlayerSnapshotRepository{db: db}
}

// UpsertBatch writes one statement per record so a key repeated inside the
// batch resolves to its last occurrence.
func (r *PlayerSnapshotRepository) UpsertBatch(ctx context.Context, items []playersnapshot.Snapshot) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert player snapshots tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, item := range items {
		query, args, err := qb.InsertModels(playerSnapshotsTable, []playerSnapshotTableModel{toPlayerSnapshotModel(item)}, playerSnapshotUpsertSuffix)
		if err != nil {
			return fmt.Errorf("build upsert player snapshot query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert player snapshot %d player_id=%d: %w", i, item.PlayerID, withSQLState(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert player snapshots tx: %w", err)
	}
	return nil
}

func (r *PlayerSnapshotRepository) ListLatestGamesPlayed(ctx context.Context) ([]playersnapshot.GamesPlayed, error) {
	query, args, err := qb.Select("player_id", "player_name", "gp").From(playerSnapshotsTable).
		Where(qb.Expr("snapshot_date = (SELECT MAX(snapshot_date) FROM player_snapshots)")).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select latest games played query: %w", err)
	}

	var rows []gamesPlayedModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select latest games played: %w", err)
	}

	out := make([]playersnapshot.GamesPlayed, 0, len(rows))
	for _, row := range rows {
		out = append(out, playersnapshot.GamesPlayed{PlayerID: row.PlayerID, PlayerName: row.PlayerName, GP: row.GP})
	}
	return out, nil
}

func toPlayerSnapshotModel(s playersnapshot.Snapshot) playerSnapshotTableModel {
	m := playerSnapshotTableModel{
		SnapshotDate: s.SnapshotDate,
		PlayerID:     s.PlayerID,
		PlayerName:   s.PlayerName,
		Age:          s.Age,
		GP:           s.GP,
		Min:          s.Min,
		Pts:          s.Pts,
		FGM:          s.FGM,
		FGA:          s.FGA,
		FGPct:        s.FGPct,
		FG3M:         s.FG3M,
		FG3A:         s.FG3A,
		FG3Pct:       s.FG3Pct,
		FTM:          s.FTM,
		FTA:          s.FTA,
		FTPct:        s.FTPct,
		Reb:          s.Reb,
		Ast:          s.Ast,
		Stl:          s.Stl,
		Blk:          s.Blk,
		Tov:          s.Tov,
	}
	if s.TeamID != nil {
		m.TeamID = sql.NullInt64{Int64: *s.TeamID, Valid: true}
	}
	m.TeamAbbreviation = nullString(s.TeamAbbreviation)
	return m
}

func buildUpsertSuffix(conflict, columns []string) string {
	keys := make(map[string]struct{}, len(conflict))
	for _, c := range conflict {
		keys[c] = struct{}{}
	}

	sets := make([]string, 0, len(columns)+1)
	for _, col := range columns {
		if _, ok := keys[col]; ok {
			continue
		}
		sets = append(sets, col+" = EXCLUDED."+col)
	}
	sets = append(sets, "updated_at = NOW()")

	return "ON CONFLICT (" + strings.Join(conflict, ", ") + ") DO UPDATE SET " + strings.Join(sets, ", ")
}
