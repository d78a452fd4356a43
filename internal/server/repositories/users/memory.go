package users

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/gophdemo/internal/common"
	"github.com/dmitrijs2005/gophdemo/internal/server/models"
)

// DefaultRecords returns the fixed demo record set.
func DefaultRecords() []models.User {
	return []models.User{
		{ID: 1, Username: "admin", Password: "1234", Name: "관리자"},
		{ID: 2, Username: "user1", Password: "pass1", Name: "사용자1"},
		{ID: 3, Username: "user2", Password: "pass2", Name: "사용자2"},
	}
}

// MemoryRepository serves a record set held in memory. It is never written
// after construction, so concurrent reads need no locking.
type MemoryRepository struct {
	records []models.User
}

// NewMemoryRepository copies records and orders them by id.
func NewMemoryRepository(records []models.User) *MemoryRepository {
	r := slices.Clone(records)
	slices.SortFunc(r, func(a, b models.User) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return &MemoryRepository{records: r}
}

func (r *MemoryRepository) FindByCredentials(_ context.Context, username, password string) (*models.User, error) {
	for _, u := range r.records {
		if u.Username == username && u.Password == password {
			found := u
			return &found, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) List(_ context.Context) ([]models.User, error) {
	return slices.Clone(r.records), nil
}
