package usecase

import (
	"context"
	"errors"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/draft-ratings/internal/domain/draft"
	"github.com/riskibarqy/draft-ratings/internal/domain/playersnapshot"
	"github.com/riskibarqy/draft-ratings/internal/domain/transaction"
	idgen "github.com/riskibarqy/draft-ratings/internal/platform/id"
	"github.com/riskibarqy/draft-ratings/internal/platform/logging"
	"github.com/riskibarqy/draft-ratings/internal/platform/metrics"
	"github.com/riskibarqy/draft-ratings/internal/platform/validation"
	"go.opentelemetry.io/otel/attribute"
)

const (
	KindDraftPicks      = "draft_picks"
	KindTransactions    = "transactions"
	KindPlayerSnapshots = "player_snapshots"
)

// IngestResult describes one accepted batch.
type IngestResult struct {
	BatchID  string
	Count    int
	Snapshot string
}

// IngestionService validates whole batches before any write; a rejected
// batch never reaches a repository.
type IngestionService struct {
	draftRepo  draft.Repository
	txRepo     transaction.Repository
	playerRepo playersnapshot.Repository
	validator  *validation.Validator
	idGen      idgen.Generator
	metrics    *metrics.Manager
	logger     *logging.Logger
}

func NewIngestionService(
	draftRepo draft.Repository,
	txRepo transaction.Repository,
	playerRepo playersnapshot.Repository,
	idGen idgen.Generator,
	metricsManager *metrics.Manager,
	logger *logging.Logger,
) (*IngestionService, error) {
	if logger == nil {
		logger = logging.Default()
	}

	v := validation.New()
	if err := v.RegisterString("verdict", draft.IsKnownLabel); err != nil {
		return nil, err
	}
	if err := v.RegisterString("transacdate", func(raw string) bool {
		_, err := transaction.ParseDate(raw)
		return err == nil
	}); err != nil {
		return nil, err
	}

	return &IngestionService{
		draftRepo:  draftRepo,
		txRepo:     txRepo,
		playerRepo: playerRepo,
		validator:  v,
		idGen:      idGen,
		metrics:    metricsManager,
		logger:     logger,
	}, nil
}

func (s *IngestionService) IngestDraftPicks(ctx context.Context, raw []byte) (IngestResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.IngestDraftPicks")
	defer span.End()

	payload, err := parsePayload[DraftPicksPayload](ctx, s, KindDraftPicks, raw)
	if err != nil {
		return IngestResult{}, err
	}

	batchID, err := s.newBatchID()
	if err != nil {
		return IngestResult{}, err
	}
	picks := payload.toPicks()
	span.SetAttributes(attribute.String("batch_id", batchID), attribute.Int("records", len(picks)))

	if err := s.draftRepo.InsertBatch(ctx, picks); err != nil {
		s.metrics.RecordIngestionRejected(KindDraftPicks, "store")
		return IngestResult{}, crerr.Wrapf(err, "insert draft picks batch %s", batchID)
	}

	s.metrics.RecordIngested(KindDraftPicks, len(picks))
	s.logger.InfoContext(ctx, "draft picks ingested",
		"batch_id", batchID,
		"snapshot_timestamp", payload.SnapshotTimestamp,
		"count", len(picks),
	)
	return IngestResult{BatchID: batchID, Count: len(picks), Snapshot: payload.SnapshotTimestamp}, nil
}

func (s *IngestionService) IngestTransactions(ctx context.Context, raw []byte) (IngestResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.IngestTransactions")
	defer span.End()

	payload, err := parsePayload[TransactionsPayload](ctx, s, KindTransactions, raw)
	if err != nil {
		return IngestResult{}, err
	}

	batchID, err := s.newBatchID()
	if err != nil {
		return IngestResult{}, err
	}
	items := payload.toTransactions()
	span.SetAttributes(attribute.String("batch_id", batchID), attribute.Int("records", len(items)))

	if err := s.txRepo.InsertBatch(ctx, items); err != nil {
		s.metrics.RecordIngestionRejected(KindTransactions, "store")
		return IngestResult{}, crerr.Wrapf(err, "insert transactions batch %s", batchID)
	}

	s.metrics.RecordIngested(KindTransactions, len(items))
	s.logger.InfoContext(ctx, "transactions ingested",
		"batch_id", batchID,
		"snapshot_date", payload.SnapshotDate,
		"count", len(items),
	)
	return IngestResult{BatchID: batchID, Count: len(items), Snapshot: payload.SnapshotDate}, nil
}

func (s *IngestionService) IngestPlayerSnapshots(ctx context.Context, raw []byte) (IngestResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.IngestPlayerSnapshots")
	defer span.End()

	payload, err := parsePayload[PlayerSnapshotPayload](ctx, s, KindPlayerSnapshots, raw)
	if err != nil {
		return IngestResult{}, err
	}

	batchID, err := s.newBatchID()
	if err != nil {
		return IngestResult{}, err
	}
	items := payload.toSnapshots()
	span.SetAttributes(attribute.String("batch_id", batchID), attribute.Int("records", len(items)))

	if err := s.playerRepo.UpsertBatch(ctx, items); err != nil {
		s.metrics.RecordIngestionRejected(KindPlayerSnapshots, "store")
		return IngestResult{}, crerr.Wrapf(err, "upsert player snapshots batch %s", batchID)
	}

	s.metrics.RecordIngested(KindPlayerSnapshots, len(items))
	s.logger.InfoContext(ctx, "player snapshots ingested",
		"batch_id", batchID,
		"snapshot_date", payload.SnapshotDate,
		"count", len(items),
	)
	return IngestResult{BatchID: batchID, Count: len(items), Snapshot: payload.SnapshotDate}, nil
}

func (s *IngestionService) newBatchID() (string, error) {
	if s.idGen == nil {
		return "", nil
	}
	batchID, err := s.idGen.NewID()
	if err != nil {
		return "", fmt.Errorf("generate batch id: %w", err)
	}
	return batchID, nil
}

func parsePayload[T any](ctx context.Context, s *IngestionService, kind string, raw []byte) (T, error) {
	var zero T

	res, err := validation.Parse[T](ctx, s.validator, raw)
	if err != nil {
		if errors.Is(err, validation.ErrMalformed) {
			s.metrics.RecordIngestionRejected(kind, "malformed")
			return zero, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}
		return zero, fmt.Errorf("validate %s payload: %w", kind, err)
	}

	payload, ok := res.Value()
	if !ok {
		s.metrics.RecordIngestionRejected(kind, "validation")
		return zero, &ValidationError{Violations: res.Violations()}
	}
	return payload, nil
}
