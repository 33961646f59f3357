package auth

import (
	"testing"

	"chow/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher() *bcryptHasher {
	// MinCost keeps the test fast; production cost comes from config.
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("secret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-password", hash)

	assert.True(t, hasher.Check("secret-password", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_SamePasswordDifferentHashes(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("secret-password")
	require.NoError(t, err)
	second, err := hasher.Hash("secret-password")
	require.NoError(t, err)

	// bcrypt salts every hash, so two hashes of the same input differ.
	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}
	hasher := NewBcryptHasher(cfg).(*bcryptHasher)

	assert.Equal(t, 10, hasher.cost)
}

func TestBcryptHasher_CheckRejectsGarbageHash(t *testing.T) {
	hasher := newTestHasher()

	assert.False(t, hasher.Check("secret-password", "not-a-bcrypt-hash"))
}
