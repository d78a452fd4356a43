package repomanager

import (
	"github.com/dmitrijs2005/gophdemo/internal/server/repositories/users"
)

type InMemoryRepositoryManager struct {
	users users.Repository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{users: users.NewMemoryRepository(users.DefaultRecords())}
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}
