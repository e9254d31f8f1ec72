package httpapi

import (
	"net/http"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/draft-ratings/internal/platform/logging"
	"github.com/riskibarqy/draft-ratings/internal/platform/metrics"
)

// NewRouter wires every route behind the middleware chain. Outermost first:
// tracing, logging, CORS, panic recovery, request metrics.
func NewRouter(
	handler *Handler,
	logger *logging.Logger,
	metricsManager *metrics.Manager,
	corsAllowedOrigins []string,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("httpapi")

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, metricsManager)
	registerIngestionRoutes(mux, handler)
	registerReportRoutes(mux, handler)

	var h http.Handler = RequestMetrics(metricsManager, mux)
	h = recoverPanic(logger, h)
	h = CORS(corsAllowedOrigins, h)
	h = RequestLogging(logger, h)
	return RequestTracing(h)
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			err := crerr.Newf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
			logger.ErrorContext(r.Context(), "panic recovered", "error", err)
			writeInternalError(r.Context(), w)
		}()
		next.ServeHTTP(w, r)
	})
}
