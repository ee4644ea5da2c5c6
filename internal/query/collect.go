package query

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Collect executes s and materializes every row into a T, matching result
// columns to T's `db` tags. Specs that cannot match anything return an
// empty slice without touching the database. Driver errors are returned
// unwrapped.
func Collect[T any](ctx context.Context, q Querier, s Spec) ([]T, error) {
	if s.Empty() {
		return []T{}, nil
	}

	sql, args := s.SQL()
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
}

// Total counts the rows s would return without paging.
func Total(ctx context.Context, q Querier, s Spec) (int, error) {
	if s.Empty() {
		return 0, nil
	}

	sql, args := s.CountSQL()
	var total int
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count %s: %w", s.From, err)
	}
	return total, nil
}
