// Package db provides the database accessor used by the health endpoints.
package db

import (
	"context"
	"errors"
	"strings"

	"github.com/dsjohal14/dbhealth/internal/libs/config"
	"github.com/jackc/pgx/v5/pgconn"
)

// CountTablesQuery counts every table in the catalog visible to the connected user.
const CountTablesQuery = "SELECT count(*) FROM information_schema.tables"

// Accessor runs the two database operations exposed over HTTP
type Accessor interface {
	// CheckConnection reports whether a connection can be established.
	// Connection-establishment failures yield (false, nil); anything else is returned as an error.
	CheckConnection(ctx context.Context) (bool, error)
	// CountTables returns the number of entries in information_schema.tables.
	CountTables(ctx context.Context) (int64, error)
	Close()
}

// Open returns the accessor selected by cfg. Pooling is opt-in.
// Settings are not parsed until the first call, so bad values surface as
// connection failures rather than at startup.
func Open(cfg *config.Config) Accessor {
	if cfg.DBPool {
		return NewPoolAccessor(cfg)
	}
	return NewConnAccessor(cfg)
}

// DSN renders cfg as a keyword/value connection string. Empty settings are
// omitted so the driver defaults apply.
func DSN(cfg *config.Config) string {
	settings := []struct{ key, value string }{
		{"host", cfg.DBHost},
		{"port", cfg.DBPort},
		{"user", cfg.DBUser},
		{"password", cfg.DBPassword},
		{"dbname", cfg.DBName},
	}

	parts := make([]string, 0, len(settings))
	for _, s := range settings {
		if s.value == "" {
			continue
		}
		parts = append(parts, s.key+"="+quote(s.value))
	}
	return strings.Join(parts, " ")
}

func quote(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// IsConnectError reports whether err came from establishing a connection
// (unparsable settings, network, refused, authentication) rather than from using one.
func IsConnectError(err error) bool {
	var connectErr *pgconn.ConnectError
	var parseErr *pgconn.ParseConfigError
	return errors.As(err, &connectErr) || errors.As(err, &parseErr)
}
