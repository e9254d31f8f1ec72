package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	qb "github.com/riskibarqy/draft-ratings/internal/platform/querybuilder"
)

// postgres caps bind parameters per statement at 65535.
const maxBindParams = 65535

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// withSQLState attaches the SQLSTATE and constraint of a server error as
// error details so logs carry them without parsing the message.
func withSQLState(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	if pqErr.Constraint != "" {
		return crerr.WithDetailf(err, "sqlstate=%s constraint=%s", pqErr.Code, pqErr.Constraint)
	}
	return crerr.WithDetailf(err, "sqlstate=%s", pqErr.Code)
}

// insertChunked writes models inside tx as multi-row INSERTs sized to stay
// under the bind parameter limit.
func insertChunked[T any](ctx context.Context, tx *sqlx.Tx, table string, models []T, suffix string) error {
	if len(models) == 0 {
		return nil
	}

	perRow := len(qb.Columns(models[0]))
	if perRow == 0 {
		return fmt.Errorf("model for %s has no db columns", table)
	}
	chunkSize := max(1, maxBindParams/perRow)

	for start := 0; start < len(models); start += chunkSize {
		end := min(start+chunkSize, len(models))
		query, args, err := qb.InsertModels(table, models[start:end], suffix)
		if err != nil {
			return fmt.Errorf("build insert %s rows %d-%d query: %w", table, start, end-1, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert %s rows %d-%d: %w", table, start, end-1, withSQLState(err))
		}
	}
	return nil
}
