// Package auth implements credential hashing and verification.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch reports that the candidate did not match the stored
// hash. Any other error from Verify means the stored hash itself is
// unusable and must not be treated as a bad credential.
var ErrPasswordMismatch = errors.New("incorrect password")

// Hasher converts plaintext passwords into salted one-way digests and
// checks candidates against them.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a bcrypt-backed Hasher. Costs outside bcrypt's
// valid range fall back to the default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}
	return string(b), nil
}

func (h *BcryptHasher) Verify(password, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	if err != nil {
		return fmt.Errorf("auth: verify password: %w", err)
	}
	return nil
}
