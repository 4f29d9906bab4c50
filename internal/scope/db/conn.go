package db

import (
	"context"
	"fmt"

	"github.com/dsjohal14/dbhealth/internal/libs/config"
	"github.com/jackc/pgx/v5"
)

// ConnAccessor opens a new connection for every call and closes it before returning.
type ConnAccessor struct {
	dsn string
}

// NewConnAccessor creates an unpooled accessor
func NewConnAccessor(cfg *config.Config) *ConnAccessor {
	return &ConnAccessor{dsn: DSN(cfg)}
}

// connect parses the settings and dials. A malformed setting is returned as a
// *pgconn.ParseConfigError.
func (a *ConnAccessor) connect(ctx context.Context) (*pgx.Conn, error) {
	return pgx.Connect(ctx, a.dsn)
}

// CheckConnection opens and immediately closes a connection
func (a *ConnAccessor) CheckConnection(ctx context.Context) (bool, error) {
	conn, err := a.connect(ctx)
	if err != nil {
		if IsConnectError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := conn.Close(ctx); err != nil {
		return false, fmt.Errorf("failed to close connection: %w", err)
	}
	return true, nil
}

// CountTables opens a connection, runs CountTablesQuery and closes the connection
func (a *ConnAccessor) CountTables(ctx context.Context) (count int64, err error) {
	conn, err := a.connect(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if cerr := conn.Close(ctx); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close connection: %w", cerr)
		}
	}()

	if err := conn.QueryRow(ctx, CountTablesQuery).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tables: %w", err)
	}
	return count, nil
}

// Close is a no-op; ConnAccessor holds no connections between calls.
func (a *ConnAccessor) Close() {}
