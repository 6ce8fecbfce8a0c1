package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wellwisher/wellwisher-backend/internal/modules/user"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	userRepo   user.Repository
	jwtSecret  []byte
	tokenTTL   time.Duration
	bcryptCost int
}

// NewService creates a new auth service. secret signs issued tokens, ttl is
// their validity window, and cost is the bcrypt work factor.
func NewService(userRepo user.Repository, secret []byte, ttl time.Duration, cost int) Service {
	return &service{
		userRepo:   userRepo,
		jwtSecret:  secret,
		tokenTTL:   ttl,
		bcryptCost: cost,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (user.PublicUser, error) {
	role := user.Role(req.Role)
	if req.Role == "" || req.Name == "" || req.Email == "" || req.Password == "" || !role.Valid() {
		return user.PublicUser{}, ErrInvalidRequest
	}

	// Fast path for the friendly error; the unique index is still the
	// source of truth when two registrations race.
	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return user.PublicUser{}, ErrDuplicateUser
	} else if !errors.Is(err, user.ErrNotFound) {
		return user.PublicUser{}, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return user.PublicUser{}, fmt.Errorf("hash password: %w", err)
	}

	u := &user.User{
		Role:              role,
		Name:              req.Name,
		Email:             req.Email,
		PasswordHash:      string(hash),
		Major:             req.Major,
		Year:              req.Year,
		LivingSituation:   req.LivingSituation,
		Goals:             req.Goals,
		DOB:               req.DOB,
		EmergencyName:     req.EmergencyName,
		EmergencyRelation: req.EmergencyRelation,
		EmergencyNumber:   req.EmergencyNumber,
		SupportNetwork:    req.SupportNetwork,
	}

	if err := s.userRepo.Insert(ctx, u); err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return user.PublicUser{}, ErrDuplicateUser
		}
		return user.PublicUser{}, fmt.Errorf("insert user: %w", err)
	}

	return u.Public(), nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrInvalidRequest
	}

	u, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			// Same error as a wrong password so responses cannot be
			// used to probe which emails are registered.
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := GenerateToken(u, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &LoginResult{User: u.Public(), Token: token}, nil
}
