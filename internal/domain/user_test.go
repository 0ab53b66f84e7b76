package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("  Alice@Example.COM ", "secret1", "Alice Lead", RoleLead)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}
	if user.Email != "alice@example.com" {
		t.Errorf("Expected normalized email, got %s", user.Email)
	}
	if user.Password != "secret1" {
		t.Errorf("Expected plaintext password to be kept until hashing")
	}
	if !user.IsLead() {
		t.Error("Expected lead role")
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("Expected non-zero timestamps")
	}
}

func TestNewUser_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		fullName string
		role     Role
		field    string
	}{
		{"empty email", "", "secret1", "Dev", RoleDev, "email"},
		{"malformed email", "not-an-email", "secret1", "Dev", RoleDev, "email"},
		{"empty full name", "dev@example.com", "secret1", "   ", RoleDev, "full_name"},
		{"unknown role", "dev@example.com", "secret1", "Dev", Role("admin"), "role"},
		{"short password", "dev@example.com", "12345", "Dev", RoleDev, "password"},
		{"long password", "dev@example.com", strings.Repeat("x", 73), "Dev", RoleDev, "password"},
		{"empty password", "dev@example.com", "", "Dev", RoleDev, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.email, tt.password, tt.fullName, tt.role)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("Expected ErrValidation, got %v", err)
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Expected *ValidationError, got %T", err)
			}
			if vErr.Field != tt.field {
				t.Errorf("Expected field %q, got %q", tt.field, vErr.Field)
			}
		})
	}
}

func TestUserValidate_HashedPasswordOnly(t *testing.T) {
	user := User{
		ID:             uuid.New(),
		Email:          "dev@example.com",
		FullName:       "Dev",
		Role:           RoleDev,
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	if err := user.Validate(); err != nil {
		t.Errorf("Expected stored user to validate, got %v", err)
	}
}

func TestRoleIsValid(t *testing.T) {
	if !RoleLead.IsValid() || !RoleDev.IsValid() {
		t.Error("Expected lead and dev to be valid roles")
	}
	if Role("").IsValid() || Role("LEAD").IsValid() {
		t.Error("Expected unknown roles to be invalid")
	}
}
