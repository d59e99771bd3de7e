package store

import (
	"context"
	"errors"

	"github.com/Beticesk/PROYECTO-FINAL/internal/models"
)

var (
	// ErrEmailTaken reports a violation of the unique email constraint.
	ErrEmailTaken = errors.New("email already registered")

	// ErrNotFound covers both unknown and deactivated accounts; callers
	// must not be able to tell the two apart.
	ErrNotFound = errors.New("user not found or inactive")
)

// NewUser carries the caller-controlled fields of a registration. Identity,
// activation, and timestamps are assigned by the store.
type NewUser struct {
	Username     string
	Email        string
	PasswordHash string
	Role         string
}

// UserStore persists user records. CreateUser is atomic: on any error no
// record is written, and uniqueness is enforced by the store itself so that
// concurrent registrations with the same email cannot race.
type UserStore interface {
	CreateUser(ctx context.Context, nu NewUser) (*models.User, error)
	FindActiveByEmail(ctx context.Context, email string) (*models.User, error)
}
