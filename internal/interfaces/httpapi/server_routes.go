package httpapi

import (
	"net/http"

	"github.com/riskibarqy/draft-ratings/internal/platform/metrics"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metricsManager *metrics.Manager) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metricsManager == nil {
		return
	}
	mux.Handle("GET /metrics", metricsManager.Handler())
}

func registerIngestionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /seed_draft_ratings", handler.SeedDraftRatings)
	mux.HandleFunc("POST /transactions", handler.LoadTransactions)
	mux.HandleFunc("POST /load_gp", handler.LoadGamesPlayed)
}

func registerReportRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /{$}", handler.Dashboard)
	mux.HandleFunc("GET /team/{id}", handler.TeamSummary)
	mux.HandleFunc("GET /team/{id}/picks", handler.TeamPicks)
	mux.HandleFunc("GET /waiverwire", handler.WaiverWire)
	mux.HandleFunc("GET /matching-players/{season}", handler.MatchingPlayers)
}
