package usecase

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/draft-ratings/internal/domain/draft"
	"github.com/riskibarqy/draft-ratings/internal/domain/playersnapshot"
	"github.com/riskibarqy/draft-ratings/internal/platform/namenorm"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

type DraftRatingService struct {
	draftRepo  draft.Repository
	playerRepo playersnapshot.Repository
}

func NewDraftRatingService(draftRepo draft.Repository, playerRepo playersnapshot.Repository) *DraftRatingService {
	return &DraftRatingService{
		draftRepo:  draftRepo,
		playerRepo: playerRepo,
	}
}

// SeasonRatings is the dashboard report for one season. Snapshot is empty
// when the season has no draft rows.
type SeasonRatings struct {
	Season   int
	Snapshot string
	Method   draft.EvalMethod
	Teams    []draft.TeamAggregate
}

func (r SeasonRatings) HasData() bool {
	return r.Snapshot != ""
}

// TeamPicks is one team's picks in a season's newest snapshot.
type TeamPicks struct {
	Season   int
	Snapshot string
	TeamID   int64
	TeamName string
	Picks    []draft.Pick
}

func (s *DraftRatingService) LatestSnapshot(ctx context.Context, season int) (string, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftRatingService.LatestSnapshot", attribute.Int("season", season))
	defer span.End()

	snapshot, ok, err := s.draftRepo.LatestSnapshot(ctx, season)
	if err != nil {
		return "", false, crerr.Wrapf(err, "latest snapshot for season %d", season)
	}
	return snapshot, ok, nil
}

func (s *DraftRatingService) SeasonRatings(ctx context.Context, season int, method draft.EvalMethod) (SeasonRatings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftRatingService.SeasonRatings",
		attribute.Int("season", season),
		attribute.String("eval_method", method.Key()),
	)
	defer span.End()

	out := SeasonRatings{Season: season, Method: method, Teams: []draft.TeamAggregate{}}
	snapshot, ok, err := s.LatestSnapshot(ctx, season)
	if err != nil {
		return SeasonRatings{}, err
	}
	if !ok {
		return out, nil
	}
	out.Snapshot = snapshot

	// Picks and the games-played index are independent once the snapshot
	// is known.
	var (
		picks       []draft.Pick
		gamesPlayed draft.GamesPlayedFunc
	)
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		picks, err = s.draftRepo.ListBySnapshot(ctx, season, snapshot)
		return crerr.Wrap(err, "list draft picks by snapshot")
	})
	if method.NeedsGamesPlayed() {
		p.Go(func(ctx context.Context) error {
			index, err := s.gamesPlayedIndex(ctx)
			if err != nil {
				return err
			}
			gamesPlayed = func(p draft.Pick) int {
				gp, _ := index.Lookup(p.PlayerName)
				return gp
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return SeasonRatings{}, err
	}

	out.Teams = draft.Aggregate(picks, gamesPlayed)
	return out, nil
}

func (s *DraftRatingService) TeamPicks(ctx context.Context, teamID int64, season int) (TeamPicks, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftRatingService.TeamPicks")
	defer span.End()

	if teamID <= 0 {
		return TeamPicks{}, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}

	out := TeamPicks{Season: season, TeamID: teamID, Picks: []draft.Pick{}}
	snapshot, ok, err := s.LatestSnapshot(ctx, season)
	if err != nil {
		return TeamPicks{}, err
	}
	if !ok {
		return out, nil
	}
	out.Snapshot = snapshot

	picks, err := s.draftRepo.ListTeamPicks(ctx, teamID, season, snapshot)
	if err != nil {
		return TeamPicks{}, crerr.Wrapf(err, "list picks for team %d", teamID)
	}
	out.Picks = picks
	if len(picks) > 0 {
		out.TeamName = picks[0].TeamName
	}
	return out, nil
}

// TeamSummary returns the lifetime view. A team that never drafted yields
// ErrNotFound.
func (s *DraftRatingService) TeamSummary(ctx context.Context, teamID int64) (draft.LifetimeSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftRatingService.TeamSummary")
	defer span.End()

	if teamID <= 0 {
		return draft.LifetimeSummary{}, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}

	picks, err := s.draftRepo.ListTeamLatestPicks(ctx, teamID)
	if err != nil {
		return draft.LifetimeSummary{}, crerr.Wrapf(err, "list lifetime picks for team %d", teamID)
	}

	summary, ok := draft.Summarize(teamID, picks)
	if !ok {
		return summary, fmt.Errorf("%w: team %d has no draft picks", ErrNotFound, teamID)
	}
	return summary, nil
}

// MatchingPlayers lists the season's drafted players with games played from
// the newest player snapshot.
func (s *DraftRatingService) MatchingPlayers(ctx context.Context, season int) ([]draft.PlayerMatch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftRatingService.MatchingPlayers")
	defer span.End()

	players, err := s.draftRepo.ListSeasonPlayers(ctx, season)
	if err != nil {
		return nil, crerr.Wrapf(err, "list players for season %d", season)
	}
	if len(players) == 0 {
		return []draft.PlayerMatch{}, nil
	}

	index, err := s.gamesPlayedIndex(ctx)
	if err != nil {
		return nil, err
	}
	for i := range players {
		players[i].GamesPlayed, _ = index.Lookup(players[i].DraftName)
	}
	return players, nil
}

func (s *DraftRatingService) gamesPlayedIndex(ctx context.Context) (*namenorm.Index[int], error) {
	rows, err := s.playerRepo.ListLatestGamesPlayed(ctx)
	if err != nil {
		return nil, crerr.Wrap(err, "list latest games played")
	}

	index := namenorm.NewIndex[int](len(rows))
	for _, row := range rows {
		index.Add(row.PlayerName, row.GP)
	}
	return index, nil
}
