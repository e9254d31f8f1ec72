package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/draft-ratings/internal/domain/transaction"
)

type TransactionRepository struct {
	mu    sync.RWMutex
	items []transaction.Transaction
}

func NewTransactionRepository(items []transaction.Transaction) *TransactionRepository {
	return &TransactionRepository{items: append([]transaction.Transaction(nil), items...)}
}

func (r *TransactionRepository) InsertBatch(_ context.Context, items []transaction.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, items...)
	return nil
}

func (r *TransactionRepository) ListBetween(_ context.Context, from, to time.Time) ([]transaction.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]transaction.Transaction, 0)
	for _, item := range r.items {
		if item.TransacDate.Before(from) || !item.TransacDate.Before(to) {
			continue
		}
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TransacDate.After(out[j].TransacDate)
	})
	return out, nil
}
