package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/devsprint/devsprint-api/internal/domain"
	"github.com/devsprint/devsprint-api/internal/platform/logger"
	"github.com/devsprint/devsprint-api/internal/redact"
	"github.com/devsprint/devsprint-api/internal/store"
	"github.com/google/uuid"
)

// PostgresMembershipStore implements store.MembershipStore on the
// project_members join table.
type PostgresMembershipStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresMembershipStore creates a PostgresMembershipStore. If logger is
// nil, slog.Default() is used.
func NewPostgresMembershipStore(db store.DBTX, logger *slog.Logger) *PostgresMembershipStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresMembershipStore{
		db:     db,
		logger: logger.With(slog.String("component", "membership_store")),
	}
}

var _ store.MembershipStore = (*PostgresMembershipStore)(nil)

// Add implements store.MembershipStore.
func (s *PostgresMembershipStore) Add(ctx context.Context, membership *domain.Membership) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO project_members (project_id, user_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (project_id, user_id) DO NOTHING
	`, membership.ProjectID, membership.UserID, membership.CreatedAt)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return false, fmt.Errorf("%w: project or user does not exist", store.ErrInvalidEntity)
		}
		log.Error("failed to add member",
			redact.ErrorAttr(err),
			slog.String("project_id", membership.ProjectID.String()),
			slog.String("user_id", membership.UserID.String()))
		return false, MapError(err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n > 0, nil
}

// Remove implements store.MembershipStore.
func (s *PostgresMembershipStore) Remove(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM project_members WHERE project_id = $1 AND user_id = $2`,
		projectID, userID)
	if err != nil {
		log.Error("failed to remove member",
			redact.ErrorAttr(err),
			slog.String("project_id", projectID.String()),
			slog.String("user_id", userID.String()))
		return false, MapError(err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n > 0, nil
}

// IsMember implements store.MembershipStore.
func (s *PostgresMembershipStore) IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM project_members WHERE project_id = $1 AND user_id = $2
		)
	`, projectID, userID).Scan(&exists)
	if err != nil {
		log.Error("failed to check membership", redact.ErrorAttr(err))
		return false, MapError(err)
	}
	return exists, nil
}

// IsMemberForUpdate implements store.MembershipStore.
func (s *PostgresMembershipStore) IsMemberForUpdate(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var one int
	err := s.db.QueryRowContext(ctx, `
		SELECT 1 FROM project_members
		WHERE project_id = $1 AND user_id = $2
		FOR UPDATE
	`, projectID, userID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		log.Error("failed to lock membership", redact.ErrorAttr(err))
		return false, MapError(err)
	}
	return true, nil
}

// ListMembers implements store.MembershipStore.
func (s *PostgresMembershipStore) ListMembers(ctx context.Context, projectID uuid.UUID) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT u.id, u.email, u.hashed_password, u.full_name, u.role, u.created_at, u.updated_at
		FROM project_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.project_id = $1
		ORDER BY m.created_at, u.email
	`, projectID)
	if err != nil {
		log.Error("failed to list members",
			redact.ErrorAttr(err),
			slog.String("project_id", projectID.String()))
		return nil, MapError(err)
	}
	defer closeRows(ctx, log, rows)

	members, err := collect(rows, scanUser)
	if err != nil {
		log.Error("failed to scan members", redact.ErrorAttr(err))
		return nil, MapError(err)
	}
	return members, nil
}

// WithTx implements store.MembershipStore.
func (s *PostgresMembershipStore) WithTx(tx *sql.Tx) store.MembershipStore {
	return &PostgresMembershipStore{db: tx, logger: s.logger}
}
