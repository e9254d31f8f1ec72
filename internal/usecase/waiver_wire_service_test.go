package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/draft-ratings/internal/domain/draft"
	"github.com/riskibarqy/draft-ratings/internal/domain/leagueweek"
	"github.com/riskibarqy/draft-ratings/internal/domain/transaction"
	draftmock "github.com/riskibarqy/draft-ratings/internal/mocks/domain/draft"
	transactionmock "github.com/riskibarqy/draft-ratings/internal/mocks/domain/transaction"
	"github.com/stretchr/testify/mock"
)

func strPtr(v string) *string { return &v }

func utcDay(month time.Month, day int) time.Time {
	return time.Date(2024, month, day, 0, 0, 0, 0, time.UTC)
}

func newWaiverWireService(t *testing.T) (*WaiverWireService, *transactionmock.Repository, *draftmock.Repository) {
	t.Helper()
	txRepo := transactionmock.NewRepository(t)
	draftRepo := draftmock.NewRepository(t)
	calendar := leagueweek.NewCalendar(utcDay(time.October, 22))
	service := NewWaiverWireService(txRepo, draftRepo, calendar).
		WithClock(func() time.Time { return utcDay(time.November, 6) })
	return service, txRepo, draftRepo
}

func TestWaiverWireService_ParseQuery(t *testing.T) {
	t.Parallel()

	service, _, _ := newWaiverWireService(t)

	got, err := service.ParseQuery("", "")
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}
	if got.Week != 3 || got.Filter != transaction.FilterAll {
		t.Fatalf("expected current week 3 and all filter, got %+v", got)
	}

	for _, tc := range []struct{ week, kind string }{{"x", ""}, {"0", ""}, {"2", "trades"}} {
		if _, err := service.ParseQuery(tc.week, tc.kind); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("ParseQuery(%q,%q) expected ErrInvalidInput, got %v", tc.week, tc.kind, err)
		}
	}
}

func TestWaiverWireService_Report_GroupsAndResolvesTeams(t *testing.T) {
	t.Parallel()

	service, txRepo, draftRepo := newWaiverWireService(t)

	txRepo.On("ListBetween", mock.Anything, utcDay(time.October, 29), utcDay(time.November, 5)).Return([]transaction.Transaction{
		{TransacTeam: strPtr("2"), TransacDate: utcDay(time.October, 30), TransacType: "FREE_AGENT_ADDED", PlayerInfo: "A"},
		{TransacTeam: strPtr("99"), TransacDate: utcDay(time.October, 31), TransacType: "DROPPED", PlayerInfo: "B"},
		{TransacTeam: strPtr("1"), TransacDate: utcDay(time.October, 29), TransacType: "DROPPED", PlayerInfo: "C"},
		{TransacTeam: strPtr("2"), TransacDate: utcDay(time.November, 2), TransacType: "DROPPED", PlayerInfo: "D"},
		{TransacTeam: nil, TransacDate: utcDay(time.November, 1), TransacType: "WAIVER_ADDED", PlayerInfo: "E"},
	}, nil).Once()
	draftRepo.On("ListLatestTeams", mock.Anything).Return([]draft.TeamRef{
		{TeamID: 1, TeamName: "Zulu"},
		{TeamID: 2, TeamName: "Alpha"},
	}, nil).Once()

	got, err := service.Report(context.Background(), WaiverWireQuery{Week: 2, Filter: transaction.FilterAll})
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if got.Total != 5 || got.CurrentWeek != 3 || len(got.Weeks) != 3 {
		t.Fatalf("unexpected report header: %+v", got)
	}
	if !got.HasPrevious() || !got.HasNext() {
		t.Fatalf("expected week 2 of 3 to navigate both ways")
	}

	want := []string{"Alpha", "Zulu", transaction.UnknownTeam}
	if len(got.Groups) != len(want) {
		t.Fatalf("expected %d groups, got %+v", len(want), got.Groups)
	}
	for i, name := range want {
		if got.Groups[i].TeamName != name {
			t.Fatalf("group %d: got %q want %q", i, got.Groups[i].TeamName, name)
		}
	}
	alpha := got.Groups[0].Transactions
	if alpha[0].PlayerInfo != "D" || alpha[1].PlayerInfo != "A" {
		t.Fatalf("expected newest first inside a team, got %s then %s", alpha[0].PlayerInfo, alpha[1].PlayerInfo)
	}
	if len(got.Groups[2].Transactions) != 2 {
		t.Fatalf("expected unmatched and null teams under Unknown Team, got %d", len(got.Groups[2].Transactions))
	}
}

func TestWaiverWireService_Report_Filters(t *testing.T) {
	t.Parallel()

	service, txRepo, draftRepo := newWaiverWireService(t)

	txRepo.On("ListBetween", mock.Anything, mock.Anything, mock.Anything).Return([]transaction.Transaction{
		{TransacTeam: strPtr("1"), TransacDate: utcDay(time.November, 5), TransacType: "FREE_AGENT_ADDED"},
		{TransacTeam: strPtr("1"), TransacDate: utcDay(time.November, 5), TransacType: "DROPPED"},
		{TransacTeam: strPtr("1"), TransacDate: utcDay(time.November, 5), TransacType: "TRADED"},
	}, nil).Twice()
	draftRepo.On("ListLatestTeams", mock.Anything).Return([]draft.TeamRef{{TeamID: 1, TeamName: "Zulu"}}, nil).Twice()

	adds, err := service.Report(context.Background(), WaiverWireQuery{Week: 3, Filter: transaction.FilterAdds})
	if err != nil {
		t.Fatalf("report adds: %v", err)
	}
	if adds.Total != 1 || adds.Groups[0].Transactions[0].TransacType != "FREE_AGENT_ADDED" {
		t.Fatalf("unexpected adds: %+v", adds.Groups)
	}

	drops, err := service.Report(context.Background(), WaiverWireQuery{Week: 3, Filter: transaction.FilterDrops})
	if err != nil {
		t.Fatalf("report drops: %v", err)
	}
	if drops.Total != 1 || drops.Groups[0].Transactions[0].TransacType != "DROPPED" {
		t.Fatalf("unexpected drops: %+v", drops.Groups)
	}
	if drops.HasNext() {
		t.Fatalf("current week must not offer a next week")
	}
}

func TestWaiverWireService_Report_Empty(t *testing.T) {
	t.Parallel()

	service, txRepo, draftRepo := newWaiverWireService(t)
	txRepo.On("ListBetween", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()
	draftRepo.On("ListLatestTeams", mock.Anything).Return(nil, nil).Once()

	got, err := service.Report(context.Background(), WaiverWireQuery{Week: 1})
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if got.Total != 0 || len(got.Groups) != 0 || got.HasPrevious() {
		t.Fatalf("expected empty first week, got %+v", got)
	}
}
