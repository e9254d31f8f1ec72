package transaction

import (
	"context"
	"time"
)

// Repository exposes transaction persistence.
type Repository interface {
	// InsertBatch writes all transactions or none of them.
	InsertBatch(ctx context.Context, items []Transaction) error
	// ListBetween returns transactions with from <= transac_date < to.
	ListBetween(ctx context.Context, from, to time.Time) ([]Transaction, error)
}
