package postgres

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/riskibarqy/draft-ratings/internal/domain/playersnapshot"
)

func TestBuildUpsertSuffix(t *testing.T) {
	got := buildUpsertSuffix([]string{"snapshot_date", "player_id"}, []string{"snapshot_date", "player_id", "player_name", "gp"})
	want := "ON CONFLICT (snapshot_date, player_id) DO UPDATE SET player_name = EXCLUDED.player_name, gp = EXCLUDED.gp, updated_at = NOW()"
	if got != want {
		t.Fatalf("unexpected suffix:\n got: %s\nwant: %s", got, want)
	}
}

func TestPlayerSnapshotRepository_UpsertBatch(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewPlayerSnapshotRepository(db)

	teamID := int64(1610612743)
	items := []playersnapshot.Snapshot{
		{SnapshotDate: "2024-11-05", PlayerID: 203999, PlayerName: "Nikola Jokic", TeamID: &teamID, GP: 8},
		{SnapshotDate: "2024-11-05", PlayerID: 1629029, PlayerName: "Luka Doncic", GP: 7},
	}

	mock.ExpectBegin()
	for range items {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO player_snapshots (snapshot_date, player_id, player_name, team_id,") + ".*" +
			regexp.QuoteMeta("ON CONFLICT (snapshot_date, player_id) DO UPDATE SET player_name = EXCLUDED.player_name")).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	if err := repo.UpsertBatch(context.Background(), items); err != nil {
		t.Fatalf("upsert batch: %v", err)
	}
	assertExpectations(t, mock)
}

func TestPlayerSnapshotRepository_UpsertBatchRollsBack(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewPlayerSnapshotRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO player_snapshots")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO player_snapshots")).WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err := repo.UpsertBatch(context.Background(), []playersnapshot.Snapshot{
		{SnapshotDate: "2024-11-05", PlayerID: 1, PlayerName: "A"},
		{SnapshotDate: "2024-11-05", PlayerID: 2, PlayerName: "B"},
	})
	if err == nil || !strings.Contains(err.Error(), "player_id=2") {
		t.Fatalf("expected error naming player 2, got %v", err)
	}
	assertExpectations(t, mock)
}

func TestPlayerSnapshotRepository_ListLatestGamesPlayed(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT player_id, player_name, gp FROM player_snapshots WHERE snapshot_date = (SELECT MAX(snapshot_date) FROM player_snapshots) ORDER BY player_id")).
		WillReturnRows(sqlmock.NewRows([]string{"player_id", "player_name", "gp"}).
			AddRow(203999, "Nikola Jokic", 8).
			AddRow(1629029, "Luka Doncic", 7))

	got, err := NewPlayerSnapshotRepository(db).ListLatestGamesPlayed(context.Background())
	if err != nil {
		t.Fatalf("list latest games played: %v", err)
	}
	if len(got) != 2 || got[0].GP != 8 || got[1].PlayerName != "Luka Doncic" {
		t.Fatalf("unexpected rows: %+v", got)
	}
	assertExpectations(t, mock)
}
