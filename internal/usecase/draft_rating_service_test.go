package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/draft-ratings/internal/domain/draft"
	"github.com/riskibarqy/draft-ratings/internal/domain/playersnapshot"
	draftmock "github.com/riskibarqy/draft-ratings/internal/mocks/domain/draft"
	playersnapshotmock "github.com/riskibarqy/draft-ratings/internal/mocks/domain/playersnapshot"
	"github.com/stretchr/testify/mock"
)

func seasonPicks() []draft.Pick {
	return []draft.Pick{
		{Season: 2025, TeamID: 1, TeamName: "Alpha", Verdict: "Steal", PlayerName: "Luka Dončić", FantasyPointsPerGame: 50},
		{Season: 2025, TeamID: 1, TeamName: "Alpha", Verdict: "Bust", PlayerName: "Nikola Jokić", FantasyPointsPerGame: 30},
		{Season: 2025, TeamID: 2, TeamName: "Bravo", Verdict: "No Verdict", PlayerName: "Unknown Rookie", FantasyPointsPerGame: 10},
		{Season: 2025, TeamID: 3, TeamName: "Charlie", Verdict: "Value", PlayerName: "Alperen Şengün", FantasyPointsPerGame: 40},
	}
}

func TestDraftRatingService_SeasonRatings_UsesLatestSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	draftRepo := draftmock.NewRepository(t)
	playerRepo := playersnapshotmock.NewRepository(t)
	service := NewDraftRatingService(draftRepo, playerRepo)

	draftRepo.On("LatestSnapshot", mock.Anything, 2025).Return("2024-11-20T00:00", true, nil).Once()
	draftRepo.On("ListBySnapshot", mock.Anything, 2025, "2024-11-20T00:00").Return(seasonPicks(), nil).Once()

	got, err := service.SeasonRatings(ctx, 2025, draft.EvalAveragePPG)
	if err != nil {
		t.Fatalf("season ratings: %v", err)
	}
	if !got.HasData() || got.Snapshot != "2024-11-20T00:00" {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
	if len(got.Teams) != 3 {
		t.Fatalf("expected 3 teams, got %d", len(got.Teams))
	}
	if got.Teams[0].TeamName != "Charlie" || got.Teams[1].TeamName != "Alpha" || got.Teams[2].TeamName != "Bravo" {
		t.Fatalf("unexpected order: %s, %s, %s", got.Teams[0].TeamName, got.Teams[1].TeamName, got.Teams[2].TeamName)
	}
	if got.Teams[2].AverageRating != nil {
		t.Fatalf("expected unrated team to have nil rating")
	}
}

func TestDraftRatingService_SeasonRatings_WeightedJoinsNormalizedNames(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	draftRepo := draftmock.NewRepository(t)
	playerRepo := playersnapshotmock.NewRepository(t)
	service := NewDraftRatingService(draftRepo, playerRepo)

	draftRepo.On("LatestSnapshot", mock.Anything, 2025).Return("s2", true, nil).Once()
	draftRepo.On("ListBySnapshot", mock.Anything, 2025, "s2").Return(seasonPicks(), nil).Once()
	playerRepo.On("ListLatestGamesPlayed", mock.Anything).Return([]playersnapshot.GamesPlayed{
		{PlayerID: 1, PlayerName: "luka doncic", GP: 10},
		{PlayerID: 2, PlayerName: "Nikola Jokic", GP: 30},
		{PlayerID: 3, PlayerName: "Alperen Sengun", GP: 20},
	}, nil).Once()

	got, err := service.SeasonRatings(ctx, 2025, draft.EvalWeightedPPG)
	if err != nil {
		t.Fatalf("season ratings: %v", err)
	}

	var alpha draft.TeamAggregate
	for _, team := range got.Teams {
		if team.TeamName == "Alpha" {
			alpha = team
		}
	}
	// (50*10 + 30*30) / 40 = 35
	if alpha.WeightedPPG != 35 || alpha.TotalPoints != 1400 {
		t.Fatalf("unexpected weighted metrics: %+v", alpha)
	}
	if got.Teams[0].TeamName != "Charlie" {
		t.Fatalf("ordering must not depend on eval method, got %s first", got.Teams[0].TeamName)
	}
}

func TestDraftRatingService_SeasonRatings_NoData(t *testing.T) {
	t.Parallel()

	draftRepo := draftmock.NewRepository(t)
	playerRepo := playersnapshotmock.NewRepository(t)
	service := NewDraftRatingService(draftRepo, playerRepo)

	draftRepo.On("LatestSnapshot", mock.Anything, 1999).Return("", false, nil).Once()

	got, err := service.SeasonRatings(context.Background(), 1999, draft.EvalTotalPoints)
	if err != nil {
		t.Fatalf("season ratings: %v", err)
	}
	if got.HasData() || len(got.Teams) != 0 || got.Teams == nil {
		t.Fatalf("expected empty report, got %+v", got)
	}
}

func TestDraftRatingService_SeasonRatings_StoreFailure(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("connection reset")
	draftRepo := draftmock.NewRepository(t)
	playerRepo := playersnapshotmock.NewRepository(t)
	service := NewDraftRatingService(draftRepo, playerRepo)

	draftRepo.On("LatestSnapshot", mock.Anything, 2025).Return("", false, storeErr).Once()

	_, err := service.SeasonRatings(context.Background(), 2025, draft.EvalAveragePPG)
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestDraftRatingService_SeasonRatings_GamesPlayedFailure(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("player_snapshots unavailable")
	draftRepo := draftmock.NewRepository(t)
	playerRepo := playersnapshotmock.NewRepository(t)
	service := NewDraftRatingService(draftRepo, playerRepo)

	draftRepo.On("LatestSnapshot", mock.Anything, 2025).Return("s2", true, nil).Once()
	draftRepo.On("ListBySnapshot", mock.Anything, 2025, "s2").Return(seasonPicks(), nil).Maybe()
	playerRepo.On("ListLatestGamesPlayed", mock.Anything).Return(nil, storeErr).Once()

	_, err := service.SeasonRatings(context.Background(), 2025, draft.EvalTotalPoints)
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected games played error, got %v", err)
	}
}

func TestDraftRatingService_TeamPicks(t *testing.T) {
	t.Parallel()

	draftRepo := draftmock.NewRepository(t)
	playerRepo := playersnapshotmock.NewRepository(t)
	service := NewDraftRatingService(draftRepo, playerRepo)

	draftRepo.On("LatestSnapshot", mock.Anything, 2025).Return("s9", true, nil).Once()
	draftRepo.On("ListTeamPicks", mock.Anything, int64(4), 2025, "s9").Return([]draft.Pick{
		{TeamID: 4, TeamName: "Delta", OverallPick: 3},
		{TeamID: 4, TeamName: "Delta", OverallPick: 18},
	}, nil).Once()

	got, err := service.TeamPicks(context.Background(), 4, 2025)
	if err != nil {
		t.Fatalf("team picks: %v", err)
	}
	if got.TeamName != "Delta" || len(got.Picks) != 2 {
		t.Fatalf("unexpected team picks: %+v", got)
	}

	if _, err := service.TeamPicks(context.Background(), 0, 2025); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero team id, got %v", err)
	}
}

func TestDraftRatingService_TeamSummary(t *testing.T) {
	t.Parallel()

	draftRepo := draftmock.NewRepository(t)
	playerRepo := playersnapshotmock.NewRepository(t)
	service := NewDraftRatingService(draftRepo, playerRepo)

	draftRepo.On("ListTeamLatestPicks", mock.Anything, int64(7)).Return([]draft.Pick{
		{Season: 2024, TeamID: 7, TeamName: "Old", Verdict: "Steal", DraftRoundFantasyPerGameAverage: 30},
		{Season: 2025, TeamID: 7, TeamName: "New", Verdict: "Fair", DraftRoundFantasyPerGameAverage: 20},
	}, nil).Once()
	draftRepo.On("ListTeamLatestPicks", mock.Anything, int64(8)).Return([]draft.Pick{}, nil).Once()

	got, err := service.TeamSummary(context.Background(), 7)
	if err != nil {
		t.Fatalf("team summary: %v", err)
	}
	if got.TeamName != "New" || got.SeasonsDrafted != 2 || got.LifetimePPG != 25 {
		t.Fatalf("unexpected summary: %+v", got)
	}
	if got.LifetimeRating == nil || *got.LifetimeRating != 3 {
		t.Fatalf("expected lifetime rating 3, got %v", got.LifetimeRating)
	}

	if _, err := service.TeamSummary(context.Background(), 8); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for team without picks, got %v", err)
	}
	if _, err := service.TeamSummary(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for team 0, got %v", err)
	}
}

func TestDraftRatingService_MatchingPlayers(t *testing.T) {
	t.Parallel()

	draftRepo := draftmock.NewRepository(t)
	playerRepo := playersnapshotmock.NewRepository(t)
	service := NewDraftRatingService(draftRepo, playerRepo)

	draftRepo.On("ListSeasonPlayers", mock.Anything, 2025).Return([]draft.PlayerMatch{
		{DraftName: "Luka Dončić", DraftID: 11},
		{DraftName: "Nobody Known", DraftID: 12},
	}, nil).Once()
	playerRepo.On("ListLatestGamesPlayed", mock.Anything).Return([]playersnapshot.GamesPlayed{
		{PlayerName: "Luka Doncic", GP: 41},
	}, nil).Once()

	got, err := service.MatchingPlayers(context.Background(), 2025)
	if err != nil {
		t.Fatalf("matching players: %v", err)
	}
	if got[0].GamesPlayed != 41 || got[1].GamesPlayed != 0 {
		t.Fatalf("unexpected games played: %+v", got)
	}
}
