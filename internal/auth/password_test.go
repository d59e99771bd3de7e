package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashProducesUniqueOutputs(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	h1, err := h.Hash("secret1")
	require.NoError(t, err)
	h2, err := h.Hash("secret1")
	require.NoError(t, err)

	// Per-call random salt: same plaintext, different digests.
	assert.NotEqual(t, h1, h2)

	assert.NoError(t, h.Verify("secret1", h1))
	assert.NoError(t, h.Verify("secret1", h2))
}

func TestVerifyWrongPassword(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret1")
	require.NoError(t, err)

	err = h.Verify("wrong", hash)
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestVerifyMalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	err := h.Verify("secret1", "not-a-bcrypt-hash")
	require.Error(t, err)

	// A broken hash is a system fault, never reported as a mismatch.
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}

func TestNewBcryptHasherClampsInvalidCost(t *testing.T) {
	h := NewBcryptHasher(1000)

	hash, err := h.Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
