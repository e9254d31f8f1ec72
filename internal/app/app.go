package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/draft-ratings/internal/config"
	"github.com/riskibarqy/draft-ratings/internal/domain/draft"
	"github.com/riskibarqy/draft-ratings/internal/domain/leagueweek"
	"github.com/riskibarqy/draft-ratings/internal/domain/playersnapshot"
	"github.com/riskibarqy/draft-ratings/internal/domain/transaction"
	"github.com/riskibarqy/draft-ratings/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/draft-ratings/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/draft-ratings/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/draft-ratings/internal/platform/id"
	"github.com/riskibarqy/draft-ratings/internal/platform/logging"
	"github.com/riskibarqy/draft-ratings/internal/platform/metrics"
	"github.com/riskibarqy/draft-ratings/internal/usecase"
)

type stores struct {
	draft   draft.Repository
	tx      transaction.Repository
	players playersnapshot.Repository
	close   func() error
}

// App is the assembled HTTP service. Close releases the store.
type App struct {
	Server *http.Server
	close  func() error
}

func (a *App) Close() error {
	if a == nil || a.close == nil {
		return nil
	}
	return a.close()
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	router, err := newRouter(cfg, st, logger)
	if err != nil {
		_ = st.close()
		return nil, err
	}

	return &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		close: st.close,
	}, nil
}

func openStores(ctx context.Context, cfg config.Config, logger *logging.Logger) (stores, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		logger.Info("using in-memory store with seed data")
		return stores{
			draft:   memory.NewDraftRatingRepository(memory.SeedDraftPicks()),
			tx:      memory.NewTransactionRepository(memory.SeedTransactions()),
			players: memory.NewPlayerSnapshotRepository(memory.SeedPlayerSnapshots()),
			close:   func() error { return nil },
		}, nil
	case config.StoreDriverPostgres:
		db, err := openDatabase(ctx, cfg, logger)
		if err != nil {
			return stores{}, err
		}
		return stores{
			draft:   postgres.NewDraftRatingRepository(db),
			tx:      postgres.NewTransactionRepository(db),
			players: postgres.NewPlayerSnapshotRepository(db),
			close:   db.Close,
		}, nil
	default:
		return stores{}, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}

func newRouter(cfg config.Config, st stores, logger *logging.Logger) (http.Handler, error) {
	var metricsManager *metrics.Manager
	if cfg.MetricsEnabled {
		metricsManager = metrics.NewManager()
	}

	ingestion, err := usecase.NewIngestionService(
		st.draft,
		st.tx,
		st.players,
		idgen.NewUUIDGenerator(),
		metricsManager,
		logger.Named("ingestion"),
	)
	if err != nil {
		return nil, err
	}
	calendar := leagueweek.NewCalendar(cfg.LeagueStartDate)

	handler, err := httpapi.NewHandler(
		usecase.NewDraftRatingService(st.draft, st.players),
		usecase.NewWaiverWireService(st.tx, st.draft, calendar),
		ingestion,
		metricsManager,
		logger.Named("httpapi"),
		httpapi.HandlerConfig{
			DefaultSeason: cfg.DefaultSeason,
			MaxBodyBytes:  cfg.MaxBodyBytes,
		},
	)
	if err != nil {
		return nil, err
	}

	return httpapi.NewRouter(handler, logger, metricsManager, cfg.CORSAllowedOrigins), nil
}
