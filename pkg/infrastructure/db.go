package infrastructure

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

// NewProfilePool connects to the Postgres profile store.
func NewProfilePool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect profile database: %w", err)
	}
	return pool, nil
}

// PoolExecer adapts a pool to migration.Execer.
func PoolExecer(pool *pgxpool.Pool) func(ctx context.Context, query string) error {
	return func(ctx context.Context, query string) error {
		_, err := pool.Exec(ctx, query)
		return err
	}
}
