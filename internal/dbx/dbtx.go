// Package dbx provides tiny DB abstractions shared by repositories: a minimal
// interface (DBTX) implemented by both *sql.DB and *sql.Tx, and the SQL
// dialects the record store can run on.
package dbx

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// DBTX is the subset of database/sql used by our repos.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Dialect identifies a supported SQL backend.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite3"
)

// Driver returns the database/sql driver name registered for the dialect.
func (d Dialect) Driver() string {
	if d == Postgres {
		return "pgx"
	}
	return "sqlite"
}

// Placeholder returns the n-th (1-based) bind parameter marker.
func (d Dialect) Placeholder(n int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// ParseDSN resolves a configured DSN into a dialect and the driver-level
// connection string.
//
//	postgres://… | postgresql://…  -> Postgres, unchanged
//	sqlite:<path>                  -> SQLite, <path>
//	file:…                         -> SQLite, unchanged
func ParseDSN(dsn string) (Dialect, string, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return Postgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite:"):
		path := strings.TrimPrefix(dsn, "sqlite:")
		if path == "" {
			return "", "", fmt.Errorf("empty sqlite path in dsn %q", dsn)
		}
		return SQLite, path, nil
	case strings.HasPrefix(dsn, "file:"):
		return SQLite, dsn, nil
	default:
		return "", "", fmt.Errorf("unsupported dsn %q", dsn)
	}
}
