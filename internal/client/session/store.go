// Package session holds the CLI's single session slot: the logged-in user,
// if any, and the access token that came with the login.
package session

import (
	"sync"
	"time"

	"github.com/dmitrijs2005/gophdemo/internal/client/models"
)

// Store is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	user     *models.User
	token    string
	loggedIn time.Time
}

func NewStore() *Store {
	return &Store{}
}

// Set replaces the slot with user and token. The stored user is a copy.
func (s *Store) Set(user models.User, token string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := user
	s.user = &u
	s.token = token
	s.loggedIn = at
}

// Clear empties the slot.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
	s.loggedIn = time.Time{}
}

// Current returns a copy of the logged-in user and whether there is one.
func (s *Store) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Token returns the access token of the current session, or "". The API
// client reads it for every request.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// LoggedInAt returns when the current session started, or the zero time.
func (s *Store) LoggedInAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

func (s *Store) Active() bool {
	_, ok := s.Current()
	return ok
}
