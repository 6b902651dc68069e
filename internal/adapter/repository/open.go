package repository

import (
	"context"
	"errors"
	"strings"

	"portfolio-server/internal/domain"
	"portfolio-server/internal/infrastructure/migration"
	"portfolio-server/internal/usecase"
	infra "portfolio-server/pkg/infrastructure"
)

// Store is a profile store that can also be seeded.
type Store interface {
	usecase.ProfileStore
	ReplaceProfile(ctx context.Context, rec *domain.ProfileRecord) (string, error)
}

// Open picks the store from the DATABASE_URL scheme and brings its schema up
// to date. The returned func releases the connection.
func Open(ctx context.Context, url string) (Store, func(), error) {
	if dsn, ok := SQLiteDSN(url); ok {
		db, err := OpenSQLite(dsn)
		if err != nil {
			return nil, nil, err
		}
		store := NewSQLiteProfileRepo(db)
		if err := migration.RunMigrations(ctx, store.Exec, migration.SQLite); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return store, func() { _ = db.Close() }, nil
	}
	if !strings.HasPrefix(url, "postgres://") && !strings.HasPrefix(url, "postgresql://") {
		return nil, nil, errors.New("DATABASE_URL must start with postgres://, sqlite: or file:")
	}

	pool, err := infra.NewProfilePool(ctx, url)
	if err != nil {
		return nil, nil, err
	}
	if err := migration.RunMigrations(ctx, infra.PoolExecer(pool), migration.Postgres); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return NewPostgresProfileRepo(pool), pool.Close, nil
}
