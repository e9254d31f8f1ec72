package httpapi

import (
	"fmt"
	"net/http"
)

func (h *Handler) SeedDraftRatings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SeedDraftRatings")
	defer span.End()

	body, err := h.readBody(w, r)
	if err != nil {
		h.logger.WarnContext(ctx, "read draft ratings body failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	result, err := h.ingestionService.IngestDraftPicks(ctx, body)
	if err != nil {
		h.logIngestionError(r, "seed draft ratings failed", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, seedDraftRatingsResponse{
		Success:   true,
		Message:   fmt.Sprintf("Successfully inserted %d draft picks", result.Count),
		Timestamp: result.Snapshot,
		BatchID:   result.BatchID,
	})
}

func (h *Handler) LoadTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LoadTransactions")
	defer span.End()

	body, err := h.readBody(w, r)
	if err != nil {
		h.logger.WarnContext(ctx, "read transactions body failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	result, err := h.ingestionService.IngestTransactions(ctx, body)
	if err != nil {
		h.logIngestionError(r, "load transactions failed", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, loadTransactionsResponse{
		Success: true,
		Message: fmt.Sprintf("Inserted %d transactions", result.Count),
		BatchID: result.BatchID,
	})
}

func (h *Handler) LoadGamesPlayed(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LoadGamesPlayed")
	defer span.End()

	body, err := h.readBody(w, r)
	if err != nil {
		h.logger.WarnContext(ctx, "read player snapshot body failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	result, err := h.ingestionService.IngestPlayerSnapshots(ctx, body)
	if err != nil {
		h.logIngestionError(r, "load games played failed", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, loadGamesPlayedResponse{
		Success: true,
		Count:   result.Count,
		BatchID: result.BatchID,
	})
}

// logIngestionError logs client mistakes at warn and store failures at error.
func (h *Handler) logIngestionError(r *http.Request, msg string, err error) {
	ctx := r.Context()
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, "path", r.URL.Path, "error", err)
		return
	}
	h.logger.WarnContext(ctx, msg, "path", r.URL.Path, "error", err)
}
