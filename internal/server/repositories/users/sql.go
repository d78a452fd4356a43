package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophdemo/internal/common"
	"github.com/dmitrijs2005/gophdemo/internal/dbx"
	"github.com/dmitrijs2005/gophdemo/internal/server/models"
)

// SQLRepository reads the record set from a users table created by the
// embedded migrations.
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) FindByCredentials(ctx context.Context, username, password string) (*models.User, error) {
	query := fmt.Sprintf(
		`SELECT id, username, password, name FROM users
		 WHERE username = %s AND password = %s`,
		r.dialect.Placeholder(1), r.dialect.Placeholder(2))

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, username, password).
		Scan(&user.ID, &user.Username, &user.Password, &user.Name)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *SQLRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, username, password, name FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.Name); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
