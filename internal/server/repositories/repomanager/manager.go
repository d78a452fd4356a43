// Package repomanager selects and owns the record store backing the API.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/gophdemo/internal/server/repositories/users"
)

// RepositoryManager hands out repositories and releases whatever
// connections they hold on Close.
type RepositoryManager interface {
	Users() users.Repository
	Close() error
}

// New returns an in-memory manager when dsn is empty, otherwise a SQL
// manager connected to dsn with migrations applied.
func New(ctx context.Context, dsn string) (RepositoryManager, error) {
	if dsn == "" {
		return NewInMemoryRepositoryManager(), nil
	}
	return NewSQLRepositoryManager(ctx, dsn)
}
