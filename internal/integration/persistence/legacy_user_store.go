// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"sync"

	"github.com/invoice-hub/backend/internal/application/adapter"
	"github.com/invoice-hub/backend/internal/domain/entity"
)

// legacyUserStore is the in-process store for the pre-OAuth credential
// records. It starts empty at process startup and is never persisted; it is
// process-scoped only, which is acceptable because the active login flow
// does not touch it.
type legacyUserStore struct {
	mu    sync.RWMutex
	users map[int64]entity.LegacyUser
}

// NewLegacyUserStore creates an empty legacy user store.
func NewLegacyUserStore() adapter.LegacyUserStore {
	return &legacyUserStore{
		users: make(map[int64]entity.LegacyUser),
	}
}

// Save stores or replaces a legacy user record.
func (s *legacyUserStore) Save(user entity.LegacyUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
}

// FindByID retrieves a legacy user by numeric id.
func (s *legacyUserStore) FindByID(id int64) (entity.LegacyUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	return user, ok
}

// FindByUsername retrieves a legacy user by username.
func (s *legacyUserStore) FindByUsername(username string) (entity.LegacyUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			return user, true
		}
	}
	return entity.LegacyUser{}, false
}
