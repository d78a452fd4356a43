package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophdemo/internal/dbx"
	"github.com/dmitrijs2005/gophdemo/internal/server/migrations"
	"github.com/dmitrijs2005/gophdemo/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

type SQLRepositoryManager struct {
	db      *sql.DB
	dialect dbx.Dialect
}

func NewSQLRepositoryManager(ctx context.Context, dsn string) (*SQLRepositoryManager, error) {
	dialect, conn, err := dbx.ParseDSN(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dialect.Driver(), conn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	// Every SQLite connection to :memory: is its own database.
	if dialect == dbx.SQLite {
		db.SetMaxOpenConns(1)
	}

	m := &SQLRepositoryManager{db: db, dialect: dialect}

	if err := m.RunMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}

func (m *SQLRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect(string(m.dialect)); err != nil {
		return err
	}

	return goose.UpContext(ctx, m.db, ".")
}

func (m *SQLRepositoryManager) Users() users.Repository {
	return users.NewSQLRepository(m.db, m.dialect)
}

func (m *SQLRepositoryManager) Close() error {
	return m.db.Close()
}
