package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/draft-ratings/internal/domain/draft"
	qb "github.com/riskibarqy/draft-ratings/internal/platform/querybuilder"
)

const draftRatingsTable = "draft_ratings"

var draftRatingColumns = qb.Columns(draftRatingTableModel{})

type DraftRatingRepository struct {
	db *sqlx.DB
}

func NewDraftRatingRepository(db *sqlx.DB) *DraftRatingRepository {
	return &DraftRatingRepository{db: db}
}

func (r *DraftRatingRepository) InsertBatch(ctx context.Context, picks []draft.Pick) error {
	if len(picks) == 0 {
		return nil
	}

	models := make([]draftRatingTableModel, 0, len(picks))
	for _, p := range picks {
		models = append(models, draftRatingTableModel{
			SnapshotTimestamp:               p.SnapshotTimestamp,
			Season:                          p.Season,
			PickNumber:                      p.PickNumber,
			Round:                           p.Round,
			OverallPick:                     p.OverallPick,
			PlayerID:                        p.PlayerID,
			PlayerName:                      p.PlayerName,
			TeamID:                          p.TeamID,
			TeamName:                        p.TeamName,
			Verdict:                         p.Verdict,
			DraftRoundFantasyPerGameAverage: p.DraftRoundFantasyPerGameAverage,
			FantasyPointsPerGame:            p.FantasyPointsPerGame,
		})
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert draft ratings tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := insertChunked(ctx, tx, draftRatingsTable, models, ""); err != nil {
		return fmt.Errorf("insert draft ratings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert draft ratings tx: %w", err)
	}
	return nil
}

func (r *DraftRatingRepository) LatestSnapshot(ctx context.Context, season int) (string, bool, error) {
	query, args, err := qb.Select("MAX(snapshot_timestamp)").From(draftRatingsTable).
		Where(qb.Eq("season", season)).
		ToSQL()
	if err != nil {
		return "", false, fmt.Errorf("build select latest snapshot query: %w", err)
	}

	var latest sql.NullString
	if err := r.db.GetContext(ctx, &latest, query, args...); err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("select latest snapshot season=%d: %w", season, err)
	}
	if !latest.Valid || latest.String == "" {
		return "", false, nil
	}
	return latest.String, true, nil
}

func (r *DraftRatingRepository) ListBySnapshot(ctx context.Context, season int, snapshot string) ([]draft.Pick, error) {
	query, args, err := qb.Select(draftRatingColumns...).From(draftRatingsTable).
		Where(
			qb.Eq("season", season),
			qb.Eq("snapshot_timestamp", snapshot),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select draft ratings by snapshot query: %w", err)
	}

	return r.selectPicks(ctx, query, args, "select draft ratings by snapshot")
}

func (r *DraftRatingRepository) ListTeamPicks(ctx context.Context, teamID int64, season int, snapshot string) ([]draft.Pick, error) {
	query, args, err := qb.Select(draftRatingColumns...).From(draftRatingsTable).
		Where(
			qb.Eq("team_id", teamID),
			qb.Eq("snapshot_timestamp", snapshot),
			qb.Eq("season", season),
		).
		OrderBy("overall_pick ASC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team picks query: %w", err)
	}

	return r.selectPicks(ctx, query, args, "select team picks")
}

func (r *DraftRatingRepository) ListTeamLatestPicks(ctx context.Context, teamID int64) ([]draft.Pick, error) {
	columns := make([]string, 0, len(draftRatingColumns))
	for _, col := range draftRatingColumns {
		columns = append(columns, "d."+col)
	}

	query, args, err := qb.Select(columns...).
		From(`draft_ratings d
JOIN (
    SELECT season, MAX(snapshot_timestamp) AS latest_snapshot
    FROM draft_ratings
    GROUP BY season
) ls ON d.season = ls.season AND d.snapshot_timestamp = ls.latest_snapshot`).
		Where(qb.Eq("d.team_id", teamID)).
		OrderBy("d.season", "d.overall_pick", "d.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team latest picks query: %w", err)
	}

	return r.selectPicks(ctx, query, args, "select team latest picks")
}

func (r *DraftRatingRepository) ListLatestTeams(ctx context.Context) ([]draft.TeamRef, error) {
	query, args, err := qb.SelectDistinct("team_id", "team_name").From(draftRatingsTable).
		Where(qb.Expr("snapshot_timestamp = (SELECT MAX(snapshot_timestamp) FROM draft_ratings)")).
		OrderBy("team_id", "team_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select latest teams query: %w", err)
	}

	var rows []draftTeamModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select latest teams: %w", err)
	}

	out := make([]draft.TeamRef, 0, len(rows))
	for _, row := range rows {
		out = append(out, draft.TeamRef{TeamID: row.TeamID, TeamName: row.TeamName})
	}
	return out, nil
}

func (r *DraftRatingRepository) ListSeasonPlayers(ctx context.Context, season int) ([]draft.PlayerMatch, error) {
	query, args, err := qb.SelectDistinct("player_id", "player_name").From(draftRatingsTable).
		Where(qb.Eq("season", season)).
		OrderBy("player_name", "player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select season players query: %w", err)
	}

	var rows []draftPlayerModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select season players season=%d: %w", season, err)
	}

	out := make([]draft.PlayerMatch, 0, len(rows))
	for _, row := range rows {
		out = append(out, draft.PlayerMatch{DraftName: row.PlayerName, DraftID: row.PlayerID})
	}
	return out, nil
}

func (r *DraftRatingRepository) selectPicks(ctx context.Context, query string, args []any, op string) ([]draft.Pick, error) {
	var rows []draftRatingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]draft.Pick, 0, len(rows))
	for _, row := range rows {
		out = append(out, draft.Pick{
			SnapshotTimestamp:               row.SnapshotTimestamp,
			Season:                          row.Season,
			PickNumber:                      row.PickNumber,
			Round:                           row.Round,
			OverallPick:                     row.OverallPick,
			PlayerID:                        row.PlayerID,
			PlayerName:                      row.PlayerName,
			TeamID:                          row.TeamID,
			TeamName:                        row.TeamName,
			Verdict:                         row.Verdict,
			DraftRoundFantasyPerGameAverage: row.DraftRoundFantasyPerGameAverage,
			FantasyPointsPerGame:            row.FantasyPointsPerGame,
		})
	}
	return out, nil
}
