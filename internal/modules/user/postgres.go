package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL credential store.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Insert(ctx context.Context, u *User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	query := `
		INSERT INTO users (
			id, role, name, email, password_hash,
			major, year, living_situation, goals, dob,
			emergency_name, emergency_relation, emergency_number, support_network
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		u.ID, u.Role, u.Name, u.Email, u.PasswordHash,
		u.Major, u.Year, u.LivingSituation, u.Goals, u.DOB,
		u.EmergencyName, u.EmergencyRelation, u.EmergencyNumber, u.SupportNetwork,
	).Scan(&u.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	u := &User{}
	query := `
		SELECT id, role, name, email, password_hash, created_at,
		       major, year, living_situation, goals, dob,
		       emergency_name, emergency_relation, emergency_number, support_network
		FROM users
		WHERE email = $1
	`
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&u.ID,
		&u.Role,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.Major,
		&u.Year,
		&u.LivingSituation,
		&u.Goals,
		&u.DOB,
		&u.EmergencyName,
		&u.EmergencyRelation,
		&u.EmergencyNumber,
		&u.SupportNetwork,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}
