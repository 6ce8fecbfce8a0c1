package user

import (
	"time"

	"github.com/google/uuid"
)

// Role distinguishes students from counselors.
type Role string

const (
	RoleUser      Role = "user"
	RoleCounselor Role = "counselor"
)

// Valid reports whether the role is one of the recognized values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleCounselor
}

// User represents a registered account. Email is unique across all users;
// uniqueness is enforced by the database index, not by application code.
// PasswordHash holds a bcrypt digest and is never serialized.
type User struct {
	ID           uuid.UUID `json:"id"`
	Role         Role      `json:"role"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`

	// Optional wellness-profile fields collected by the registration form.
	// Stored as given; nothing in the credential flow reads them.
	Major             string `json:"major,omitempty"`
	Year              string `json:"year,omitempty"`
	LivingSituation   string `json:"living_situation,omitempty"`
	Goals             string `json:"goals,omitempty"`
	DOB               string `json:"dob,omitempty"`
	EmergencyName     string `json:"emergency_name,omitempty"`
	EmergencyRelation string `json:"emergency_relation,omitempty"`
	EmergencyNumber   string `json:"emergency_number,omitempty"`
	SupportNetwork    string `json:"support_network,omitempty"`
}

// PublicUser is the sanitized view returned to clients. It carries no
// credential material.
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  Role      `json:"role"`
}

// Public returns the sanitized view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
