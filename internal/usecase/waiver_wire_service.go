package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/draft-ratings/internal/domain/draft"
	"github.com/riskibarqy/draft-ratings/internal/domain/leagueweek"
	"github.com/riskibarqy/draft-ratings/internal/domain/transaction"
	"go.opentelemetry.io/otel/attribute"
)

type WaiverWireService struct {
	txRepo    transaction.Repository
	draftRepo draft.Repository
	calendar  leagueweek.Calendar
	now       func() time.Time
}

func NewWaiverWireService(txRepo transaction.Repository, draftRepo draft.Repository, calendar leagueweek.Calendar) *WaiverWireService {
	return &WaiverWireService{
		txRepo:    txRepo,
		draftRepo: draftRepo,
		calendar:  calendar,
		now:       time.Now,
	}
}

// WithClock overrides the clock used for the current week.
func (s *WaiverWireService) WithClock(now func() time.Time) *WaiverWireService {
	if now != nil {
		s.now = now
	}
	return s
}

type WaiverWireQuery struct {
	Week   int
	Filter transaction.Filter
}

type WaiverWireReport struct {
	Week        int
	CurrentWeek int
	Weeks       []int
	Filter      transaction.Filter
	Groups      []transaction.TeamGroup
	Total       int
}

func (r WaiverWireReport) HasPrevious() bool {
	return r.Week > 1
}

func (r WaiverWireReport) HasNext() bool {
	return r.Week < r.CurrentWeek
}

// ParseQuery reads the week and type query values. An empty week selects the
// current week.
func (s *WaiverWireService) ParseQuery(rawWeek, rawType string) (WaiverWireQuery, error) {
	week, err := s.calendar.ParseWeek(rawWeek, s.now())
	if err != nil {
		return WaiverWireQuery{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	filter, err := transaction.ParseFilter(rawType)
	if err != nil {
		return WaiverWireQuery{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return WaiverWireQuery{Week: week, Filter: filter}, nil
}

func (s *WaiverWireService) Report(ctx context.Context, query WaiverWireQuery) (WaiverWireReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WaiverWireService.Report",
		attribute.Int("week", query.Week),
		attribute.String("filter", query.Filter.Key()),
	)
	defer span.End()

	from, to, err := s.calendar.Range(query.Week)
	if err != nil {
		return WaiverWireReport{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.now()
	out := WaiverWireReport{
		Week:        query.Week,
		CurrentWeek: s.calendar.Current(now),
		Weeks:       s.calendar.Weeks(now),
		Filter:      query.Filter,
		Groups:      []transaction.TeamGroup{},
	}

	items, err := s.txRepo.ListBetween(ctx, from, to)
	if err != nil {
		return WaiverWireReport{}, crerr.Wrapf(err, "list transactions for week %d", query.Week)
	}

	teams, err := s.draftRepo.ListLatestTeams(ctx)
	if err != nil {
		return WaiverWireReport{}, crerr.Wrap(err, "list latest teams")
	}
	names := make(map[string]string, len(teams))
	for _, team := range teams {
		key := strconv.FormatInt(team.TeamID, 10)
		if _, exists := names[key]; !exists {
			names[key] = team.TeamName
		}
	}

	resolved := make([]transaction.Resolved, 0, len(items))
	for _, item := range items {
		if !query.Filter.Matches(item.TransacType) {
			continue
		}
		var name string
		if item.TransacTeam != nil {
			name = names[strings.TrimSpace(*item.TransacTeam)]
		}
		resolved = append(resolved, transaction.Resolved{Transaction: item, TeamName: name})
	}

	transaction.SortForDisplay(resolved)
	out.Groups = transaction.GroupByTeam(resolved)
	out.Total = len(resolved)
	return out, nil
}
