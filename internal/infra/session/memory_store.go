// Package session provides the in-memory implementation of the process-wide
// session registry. Tokens are opaque UUIDs with no meaning outside this
// process; nothing survives a restart.
package session

import (
	"sync"

	"chow/internal/domain/service"

	"github.com/google/uuid"
)

// memoryStore keeps both directions of the token binding so that issuing a
// new token can revoke the user's previous one in O(1). All access goes
// through the RWMutex; reads never block on business work.
type memoryStore struct {
	mu          sync.RWMutex
	tokenToUser map[string]uuid.UUID
	userToToken map[uuid.UUID]string
}

// NewMemoryStore is the constructor for memoryStore.
// This function will be used as an Fx provider.
func NewMemoryStore() service.SessionStore {
	return &memoryStore{
		tokenToUser: make(map[string]uuid.UUID),
		userToToken: make(map[uuid.UUID]string),
	}
}

// Issue binds a fresh token to the user. Any token previously held by the
// user stops resolving before the new one becomes visible, so no two tokens
// ever resolve to the same user.
func (s *memoryStore) Issue(userID uuid.UUID) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	if previous, ok := s.userToToken[userID]; ok {
		delete(s.tokenToUser, previous)
	}
	s.tokenToUser[token] = userID
	s.userToToken[userID] = token

	return token
}

// Resolve returns the user bound to the token, if any.
func (s *memoryStore) Resolve(token string) (uuid.UUID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.tokenToUser[token]

	return userID, ok
}

// Revoke removes a single token.
func (s *memoryStore) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if userID, ok := s.tokenToUser[token]; ok {
		delete(s.tokenToUser, token)
		delete(s.userToToken, userID)
	}
}

// RevokeUser removes the user's live token, if any.
func (s *memoryStore) RevokeUser(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token, ok := s.userToToken[userID]; ok {
		delete(s.tokenToUser, token)
		delete(s.userToToken, userID)
	}
}
