package service_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/devsprint/devsprint-api/internal/domain"
	"github.com/devsprint/devsprint-api/internal/mocks"
	"github.com/devsprint/devsprint-api/internal/service"
	"github.com/devsprint/devsprint-api/internal/service/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T, hasher auth.PasswordHasher) (service.UserService, *memBoard, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	board := newMemBoard()
	svc, err := service.NewUserService(memUserStore{board}, hasher, db,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return svc, board, mock
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("stores hashed password", func(t *testing.T) {
		svc, _, mock := newUserService(t, &mocks.MockPasswordHasher{})

		expectCommit(mock)
		user, err := svc.Register(ctx, "Lena@Example.com", "secret123", "Lena Lead", domain.RoleLead)
		require.NoError(t, err)
		assert.Equal(t, "lena@example.com", user.Email)
		assert.Equal(t, "hashed:secret123", user.HashedPassword)
		assert.Empty(t, user.Password)
		assert.Equal(t, domain.RoleLead, user.Role)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		svc, _, mock := newUserService(t, &mocks.MockPasswordHasher{})

		expectCommit(mock)
		_, err := svc.Register(ctx, "dup@example.com", "secret123", "First", domain.RoleDev)
		require.NoError(t, err)

		expectRollback(mock)
		_, err = svc.Register(ctx, "DUP@example.com", "secret123", "Second", domain.RoleDev)
		assert.ErrorIs(t, err, service.ErrEmailTaken)
		assert.ErrorIs(t, err, service.ErrConflict)
	})

	t.Run("validation failures", func(t *testing.T) {
		svc, _, _ := newUserService(t, &mocks.MockPasswordHasher{})

		tests := []struct {
			name     string
			email    string
			password string
			fullName string
			role     domain.Role
		}{
			{"bad email", "not-an-email", "secret123", "Name", domain.RoleDev},
			{"short password", "a@example.com", "123", "Name", domain.RoleDev},
			{"missing name", "a@example.com", "secret123", "", domain.RoleDev},
			{"unknown role", "a@example.com", "secret123", "Name", domain.Role("admin")},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Register(ctx, tt.email, tt.password, tt.fullName, tt.role)
				assert.ErrorIs(t, err, service.ErrBadRequest)
				assert.ErrorIs(t, err, domain.ErrValidation)
			})
		}
	})

	t.Run("hash failure", func(t *testing.T) {
		hashErr := errors.New("hash failed")
		svc, _, _ := newUserService(t, &mocks.MockPasswordHasher{HashErr: hashErr})

		_, err := svc.Register(ctx, "a@example.com", "secret123", "Name", domain.RoleDev)
		assert.ErrorIs(t, err, hashErr)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc, _, mock := newUserService(t, auth.NewBcryptHasher(4))

	expectCommit(mock)
	registered, err := svc.Register(ctx, "lead@example.com", "secret123", "Lena Lead", domain.RoleLead)
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "LEAD@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "lead@example.com", "wrong-password")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestGetAndListUsers(t *testing.T) {
	ctx := context.Background()
	svc, _, mock := newUserService(t, &mocks.MockPasswordHasher{})

	expectCommit(mock)
	bea, err := svc.Register(ctx, "bea@example.com", "secret123", "Bea", domain.RoleDev)
	require.NoError(t, err)
	expectCommit(mock)
	_, err = svc.Register(ctx, "al@example.com", "secret123", "Al", domain.RoleLead)
	require.NoError(t, err)

	got, err := svc.GetUser(ctx, bea.ID)
	require.NoError(t, err)
	assert.Equal(t, "bea@example.com", got.Email)

	_, err = svc.GetUser(ctx, uuid.New())
	assert.ErrorIs(t, err, service.ErrUserNotFound)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Al", users[0].FullName)
}

func TestNewUserServiceRequiresDependencies(t *testing.T) {
	_, err := service.NewUserService(nil, nil, (*sql.DB)(nil), nil)
	assert.Error(t, err)
}
