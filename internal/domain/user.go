package domain

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Password length bounds. The upper bound is bcrypt's input limit.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// Role determines what a user may do across projects.
type Role string

const (
	// RoleLead may create projects and manage the membership of projects they own.
	RoleLead Role = "lead"
	// RoleDev may work on the tasks of projects they belong to.
	RoleDev Role = "dev"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleLead, RoleDev:
		return true
	default:
		return false
	}
}

var emailValidator = validator.New()

// User represents a registered user of the board.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Role           Role      `json:"role"`
	Password       string    `json:"-"` // Plaintext, only set between registration and hashing
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a validated User with a fresh ID. The email is normalized
// to lower case. The caller must hash Password before the user is stored.
func NewUser(email, password, fullName string, role Role) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Email:     NormalizeEmail(email),
		FullName:  strings.TrimSpace(fullName),
		Role:      role,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty")
	}

	if u.Email == "" {
		return NewValidationError("email", "cannot be empty")
	}
	if err := emailValidator.Var(u.Email, "email"); err != nil {
		return NewValidationError("email", "invalid email format")
	}

	if u.FullName == "" {
		return NewValidationError("full_name", "cannot be empty")
	}

	if !u.Role.IsValid() {
		return NewValidationError("role", "must be one of: lead, dev")
	}

	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			return NewValidationError("password", "must be at least 6 characters long")
		}
		if len(u.Password) > MaxPasswordLength {
			return NewValidationError("password", "must be at most 72 characters long")
		}
	} else if u.HashedPassword == "" {
		return NewValidationError("password", "cannot be empty")
	}

	return nil
}

// IsLead reports whether the user holds the lead role.
func (u *User) IsLead() bool {
	return u.Role == RoleLead
}

// NormalizeEmail trims and lower-cases an email address so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
