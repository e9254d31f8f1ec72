package httpapi

import (
	"context"
	"net/http"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/draft-ratings/internal/domain/draft"
	"github.com/riskibarqy/draft-ratings/internal/usecase"
)

const (
	reportDashboard       = "dashboard"
	reportTeamSummary     = "team_summary"
	reportTeamPicks       = "team_picks"
	reportWaiverWire      = "waiverwire"
	reportMatchingPlayers = "matching_players"
)

type dashboardView struct {
	Season  int
	Seasons []int
	Method  draft.EvalMethod
	Methods []draft.EvalMethod
	Report  usecase.SeasonRatings
}

type teamSummaryView struct {
	TeamID  int64
	Found   bool
	Summary draft.LifetimeSummary
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Dashboard")
	defer span.End()

	query := r.URL.Query()
	season, err := h.parseSeason(query.Get("season"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	method, err := draft.ParseEvalMethod(query.Get("evalMethod"))
	if err != nil {
		writeError(ctx, w, invalidQuery(err))
		return
	}

	report, err := h.draftRatingService.SeasonRatings(ctx, season, method)
	if err != nil {
		h.logger.ErrorContext(ctx, "season ratings failed", "season", season, "eval_method", method.Key(), "error", err)
		writeError(ctx, w, err)
		return
	}

	h.renderPage(ctx, w, reportDashboard, pageDashboard, http.StatusOK, dashboardView{
		Season:  season,
		Seasons: h.seasons(),
		Method:  method,
		Methods: draft.EvalMethods,
		Report:  report,
	})
}

func (h *Handler) TeamSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TeamSummary")
	defer span.End()

	teamID, err := parseTeamID(r.PathValue("id"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.draftRatingService.TeamSummary(ctx, teamID)
	switch {
	case crerr.Is(err, usecase.ErrNotFound):
		h.renderPage(ctx, w, reportTeamSummary, pageTeamSummary, mapError(ctx, err).HTTPStatus, teamSummaryView{TeamID: teamID})
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "team summary failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.renderPage(ctx, w, reportTeamSummary, pageTeamSummary, http.StatusOK, teamSummaryView{
		TeamID:  teamID,
		Found:   true,
		Summary: summary,
	})
}

func (h *Handler) TeamPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TeamPicks")
	defer span.End()

	teamID, err := parseTeamID(r.PathValue("id"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := h.parseSeason(r.URL.Query().Get("season"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	picks, err := h.draftRatingService.TeamPicks(ctx, teamID, season)
	if err != nil {
		h.logger.ErrorContext(ctx, "team picks failed", "team_id", teamID, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.renderFragment(ctx, w, reportTeamPicks, fragmentTeamPicks, picks)
}

func (h *Handler) WaiverWire(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.WaiverWire")
	defer span.End()

	query := r.URL.Query()
	q, err := h.waiverWireService.ParseQuery(query.Get("week"), query.Get("type"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.waiverWireService.Report(ctx, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "waiver wire report failed", "week", q.Week, "type", q.Filter.Key(), "error", err)
		writeError(ctx, w, err)
		return
	}

	h.renderPage(ctx, w, reportWaiverWire, pageWaiverWire, http.StatusOK, report)
}

func (h *Handler) MatchingPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MatchingPlayers")
	defer span.End()

	season, err := h.parseSeason(r.PathValue("season"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.draftRatingService.MatchingPlayers(ctx, season)
	if err != nil {
		h.logger.ErrorContext(ctx, "matching players failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	results := make([]matchingPlayerDTO, 0, len(players))
	for _, p := range players {
		results = append(results, matchingPlayerDTO{DraftName: p.DraftName, DraftID: p.DraftID, GP: p.GamesPlayed})
	}

	h.metrics.RecordReport(reportMatchingPlayers)
	writeJSON(ctx, w, http.StatusOK, matchingPlayersResponse{
		Success: true,
		Count:   len(results),
		Results: results,
	})
}

func (h *Handler) renderPage(ctx context.Context, w http.ResponseWriter, report, page string, status int, data any) {
	if err := h.views.renderPage(ctx, w, status, page, data); err != nil {
		h.logger.ErrorContext(ctx, "render page failed", "page", page, "error", err)
		writeInternalError(ctx, w)
		return
	}
	h.metrics.RecordReport(report)
}

func (h *Handler) renderFragment(ctx context.Context, w http.ResponseWriter, report, fragment string, data any) {
	if err := h.views.renderFragment(ctx, w, http.StatusOK, fragment, data); err != nil {
		h.logger.ErrorContext(ctx, "render fragment failed", "fragment", fragment, "error", err)
		writeInternalError(ctx, w)
		return
	}
	h.metrics.RecordReport(report)
}
