package user

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no user exists with the given email.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned by Insert when the email is already
	// taken. The storage layer's unique index is the source of truth, so
	// concurrent inserts with the same email resolve to exactly one winner.
	ErrDuplicateEmail = errors.New("email already registered")
)

// Repository is the credential store: one record per unique email.
type Repository interface {
	// FindByEmail looks up a user by exact email match. No case or
	// whitespace normalization is applied.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Insert persists a new user, assigning its ID. Fails with
	// ErrDuplicateEmail if the email exists at insert time.
	Insert(ctx context.Context, u *User) error
}
