package db

import (
	"context"
	"fmt"
	"sync"

	"github.com/dsjohal14/dbhealth/internal/libs/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolAccessor serves both operations from a pgx connection pool.
// The pool is built on first use; until then no settings are parsed.
type PoolAccessor struct {
	dsn string

	mu   sync.Mutex
	pool *pgxpool.Pool
}

// NewPoolAccessor creates a pooled accessor
func NewPoolAccessor(cfg *config.Config) *PoolAccessor {
	return &PoolAccessor{dsn: DSN(cfg)}
}

// getPool returns the pool, creating it on first call. A parse failure is
// returned every time and nothing is cached.
func (a *PoolAccessor) getPool() (*pgxpool.Pool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pool != nil {
		return a.pool, nil
	}

	poolCfg, err := pgxpool.ParseConfig(a.dsn)
	if err != nil {
		return nil, err
	}

	// Pool lifetime is independent of the request context.
	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	a.pool = pool
	return pool, nil
}

// CheckConnection acquires and releases a pooled connection
func (a *PoolAccessor) CheckConnection(ctx context.Context) (bool, error) {
	pool, err := a.getPool()
	if err != nil {
		if IsConnectError(err) {
			return false, nil
		}
		return false, err
	}

	conn, err := pool.Acquire(ctx)
	if err != nil {
		if IsConnectError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to acquire connection: %w", err)
	}
	conn.Release()
	return true, nil
}

// CountTables runs CountTablesQuery on a pooled connection
func (a *PoolAccessor) CountTables(ctx context.Context) (int64, error) {
	pool, err := a.getPool()
	if err != nil {
		return 0, fmt.Errorf("failed to parse pool config: %w", err)
	}

	var count int64
	if err := pool.QueryRow(ctx, CountTablesQuery).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tables: %w", err)
	}
	return count, nil
}

// Close closes the pool if it was created
func (a *PoolAccessor) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pool != nil {
		a.pool.Close()
		a.pool = nil
	}
}
