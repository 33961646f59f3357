package session

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_IssueAndResolve(t *testing.T) {
	store := NewMemoryStore()
	userID := uuid.New()

	token := store.Issue(userID)
	require.NotEmpty(t, token)

	resolved, ok := store.Resolve(token)
	require.True(t, ok)
	assert.Equal(t, userID, resolved)
}

func TestMemoryStore_ResolveUnknownToken(t *testing.T) {
	store := NewMemoryStore()

	_, ok := store.Resolve("no-such-token")
	assert.False(t, ok)
}

func TestMemoryStore_ReissueInvalidatesPreviousToken(t *testing.T) {
	store := NewMemoryStore()
	userID := uuid.New()

	first := store.Issue(userID)
	second := store.Issue(userID)
	require.NotEqual(t, first, second)

	_, ok := store.Resolve(first)
	assert.False(t, ok, "previous token must stop resolving")

	resolved, ok := store.Resolve(second)
	require.True(t, ok)
	assert.Equal(t, userID, resolved)
}

func TestMemoryStore_Revoke(t *testing.T) {
	store := NewMemoryStore()
	userID := uuid.New()

	token := store.Issue(userID)
	store.Revoke(token)

	_, ok := store.Resolve(token)
	assert.False(t, ok)

	// Revoking again is a no-op.
	store.Revoke(token)
}

func TestMemoryStore_RevokeUser(t *testing.T) {
	store := NewMemoryStore()
	userID := uuid.New()

	token := store.Issue(userID)
	store.RevokeUser(userID)

	_, ok := store.Resolve(token)
	assert.False(t, ok)

	// A user without a live token is a no-op.
	store.RevokeUser(uuid.New())
}

func TestMemoryStore_ConcurrentIssueSingleLiveToken(t *testing.T) {
	store := NewMemoryStore()
	userID := uuid.New()

	const goroutines = 32
	tokens := make([]string, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := range goroutines {
		go func() {
			defer wg.Done()
			tokens[i] = store.Issue(userID)
		}()
	}
	wg.Wait()

	live := 0
	for _, token := range tokens {
		if _, ok := store.Resolve(token); ok {
			live++
		}
	}
	assert.Equal(t, 1, live, "exactly one token may remain live per user")
}

func TestMemoryStore_ConcurrentResolve(t *testing.T) {
	store := NewMemoryStore()
	userID := uuid.New()
	token := store.Issue(userID)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				resolved, ok := store.Resolve(token)
				assert.True(t, ok)
				assert.Equal(t, userID, resolved)
			}
		}()
	}
	wg.Wait()
}
