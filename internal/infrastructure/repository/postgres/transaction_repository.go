package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/draft-ratings/internal/domain/transaction"
	qb "github.com/riskibarqy/draft-ratings/internal/platform/querybuilder"
)

const transactionsTable = "transactions"

type TransactionRepository struct {
	db *sqlx.DB
}

func NewTransactionRepository(db *sqlx.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) InsertBatch(ctx context.Context, items []transaction.Transaction) error {
	if len(items) == 0 {
		return nil
	}

	models := make([]transactionTableModel, 0, len(items))
	for _, item := range items {
		models = append(models, transactionTableModel{
			SnapshotDate:       item.SnapshotDate,
			TransacTeam:        nullString(item.TransacTeam),
			TransacDate:        item.TransacDate.UTC(),
			TransacType:        item.TransacType,
			PlayerInfo:         item.PlayerInfo,
			RelatedTransaction: item.RelatedTransaction,
			TransactionGroupID: nullString(item.TransactionGroupID),
		})
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert transactions tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := insertChunked(ctx, tx, transactionsTable, models, ""); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert transactions tx: %w", err)
	}
	return nil
}

func (r *TransactionRepository) ListBetween(ctx context.Context, from, to time.Time) ([]transaction.Transaction, error) {
	query, args, err := qb.Select(qb.Columns(transactionTableModel{})...).From(transactionsTable).
		Where(
			qb.Gte("transac_date", from.UTC()),
			qb.Lt("transac_date", to.UTC()),
		).
		OrderBy("transac_date DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select transactions query: %w", err)
	}

	var rows []transactionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select transactions between %s and %s: %w", from.Format(time.DateOnly), to.Format(time.DateOnly), err)
	}

	out := make([]transaction.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, transaction.Transaction{
			SnapshotDate:       row.SnapshotDate,
			TransacTeam:        stringPtr(row.TransacTeam),
			TransacDate:        row.TransacDate.UTC(),
			TransacType:        row.TransacType,
			PlayerInfo:         row.PlayerInfo,
			RelatedTransaction: row.RelatedTransaction,
			TransactionGroupID: stringPtr(row.TransactionGroupID),
		})
	}
	return out, nil
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
