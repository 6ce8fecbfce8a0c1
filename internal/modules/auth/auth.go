package auth

import (
	"context"
	"errors"

	"github.com/wellwisher/wellwisher-backend/internal/modules/user"
)

var (
	// ErrInvalidRequest means a required field is missing or malformed.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrDuplicateUser means the email is already registered.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password.
	// Callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// RegisterRequest carries the registration form. Role, Name, Email and
// Password are required; the rest are optional profile fields stored as-is.
type RegisterRequest struct {
	Role     string `json:"role"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`

	Major             string `json:"major"`
	Year              string `json:"year"`
	LivingSituation   string `json:"livingSituation"`
	Goals             string `json:"goals"`
	DOB               string `json:"dob"`
	EmergencyName     string `json:"emergencyName"`
	EmergencyRelation string `json:"emergencyRelation"`
	EmergencyNumber   string `json:"emergencyNumber"`
	SupportNetwork    string `json:"supportNetwork"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the outcome of a successful login: the sanitized user plus
// a signed, time-limited token.
type LoginResult struct {
	User  user.PublicUser
	Token string
}

// Service defines the interface for authentication business logic.
type Service interface {
	// Register creates a new user and returns its sanitized view. The
	// password hash never appears in the result.
	Register(ctx context.Context, req RegisterRequest) (user.PublicUser, error)

	// Login verifies credentials and issues a signed token valid for the
	// configured lifetime. It mutates no state.
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
}
