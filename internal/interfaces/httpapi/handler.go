package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/draft-ratings/internal/platform/logging"
	"github.com/riskibarqy/draft-ratings/internal/platform/metrics"
	"github.com/riskibarqy/draft-ratings/internal/usecase"
)

const (
	defaultMaxBodyBytes = 10 << 20
	seasonSelectorSpan  = 15
)

var errBodyTooLarge = errors.New("request body too large")

type HandlerConfig struct {
	DefaultSeason int
	MaxBodyBytes  int64
}

type Handler struct {
	draftRatingService *usecase.DraftRatingService
	waiverWireService  *usecase.WaiverWireService
	ingestionService   *usecase.IngestionService
	metrics            *metrics.Manager
	logger             *logging.Logger
	views              *views
	defaultSeason      int
	maxBodyBytes       int64
}

func NewHandler(
	draftRatingService *usecase.DraftRatingService,
	waiverWireService *usecase.WaiverWireService,
	ingestionService *usecase.IngestionService,
	metricsManager *metrics.Manager,
	logger *logging.Logger,
	cfg HandlerConfig,
) (*Handler, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	if cfg.DefaultSeason <= 0 {
		return nil, fmt.Errorf("default season must be positive, got %d", cfg.DefaultSeason)
	}

	v, err := loadViews()
	if err != nil {
		return nil, err
	}

	return &Handler{
		draftRatingService: draftRatingService,
		waiverWireService:  waiverWireService,
		ingestionService:   ingestionService,
		metrics:            metricsManager,
		logger:             logger,
		views:              v,
		defaultSeason:      cfg.DefaultSeason,
		maxBodyBytes:       cfg.MaxBodyBytes,
	}, nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, healthResponse{Success: true, Status: "ok"})
}

// seasons lists the selectable seasons, newest first.
func (h *Handler) seasons() []int {
	out := make([]int, 0, seasonSelectorSpan)
	for i := range seasonSelectorSpan {
		out = append(out, h.defaultSeason-i)
	}
	return out
}

// parseSeason reads a season value; empty selects the configured default.
func (h *Handler) parseSeason(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return h.defaultSeason, nil
	}
	season, err := strconv.Atoi(raw)
	if err != nil || season <= 0 {
		return 0, fmt.Errorf("%w: season must be a positive integer, got %q", usecase.ErrInvalidInput, raw)
	}
	return season, nil
}

func parseTeamID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: team id must be a positive integer, got %q", usecase.ErrInvalidInput, raw)
	}
	return id, nil
}

func invalidQuery(err error) error {
	return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
}

func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("%w: limit is %d bytes", errBodyTooLarge, maxErr.Limit)
		}
		return nil, fmt.Errorf("read request body: %w", err)
	}
	return body, nil
}
