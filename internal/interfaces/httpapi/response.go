package httpapi

import (
	"context"
	"net/http"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/draft-ratings/internal/platform/validation"
	"github.com/riskibarqy/draft-ratings/internal/usecase"
)

const (
	msgValidationFailed = "Data validation failed"
	msgInvalidJSON      = "Invalid JSON format"
	msgInvalidRequest   = "Invalid request"
	msgNotFound         = "Resource not found"
	msgBodyTooLarge     = "Request body too large"
	msgInternalError    = "Internal server error"
)

type errorResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Error   string                 `json:"error,omitempty"`
	Errors  []validation.Violation `json:"errors,omitempty"`
}

type mappedError struct {
	HTTPStatus int
	Message    string
	// Expose reports whether err.Error() is safe to echo to the client.
	Expose bool
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	var verr *usecase.ValidationError
	if crerr.As(err, &verr) {
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{
			Message: msgValidationFailed,
			Errors:  verr.Violations,
		})
		return
	}

	mapped := mapError(ctx, err)
	body := errorResponse{Message: mapped.Message}
	if mapped.Expose {
		body.Error = err.Error()
	}
	writeJSON(ctx, w, mapped.HTTPStatus, body)
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Message: msgInternalError})
}

func mapError(ctx context.Context, err error) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case crerr.Is(err, usecase.ErrMalformedPayload):
		return mappedError{HTTPStatus: http.StatusBadRequest, Message: msgInvalidJSON, Expose: true}
	case crerr.Is(err, usecase.ErrInvalidInput):
		return mappedError{HTTPStatus: http.StatusBadRequest, Message: msgInvalidRequest, Expose: true}
	case crerr.Is(err, usecase.ErrNotFound):
		return mappedError{HTTPStatus: http.StatusNotFound, Message: msgNotFound, Expose: true}
	case crerr.Is(err, errBodyTooLarge):
		return mappedError{HTTPStatus: http.StatusRequestEntityTooLarge, Message: msgBodyTooLarge}
	default:
		return mappedError{HTTPStatus: http.StatusInternalServerError, Message: msgInternalError}
	}
}
