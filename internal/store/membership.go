package store

import (
	"context"
	"database/sql"

	"github.com/devsprint/devsprint-api/internal/domain"
	"github.com/google/uuid"
)

// MembershipStore defines the interface for project membership persistence.
type MembershipStore interface {
	// Add inserts the membership if it does not exist. It reports whether a
	// row was inserted; concurrent duplicate adds leave exactly one row.
	Add(ctx context.Context, membership *domain.Membership) (bool, error)

	// Remove deletes the membership and reports whether a row was removed.
	Remove(ctx context.Context, projectID, userID uuid.UUID) (bool, error)

	// IsMember reports whether userID holds a membership in projectID.
	IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error)

	// IsMemberForUpdate is IsMember that also locks the membership row until
	// the surrounding transaction ends.
	IsMemberForUpdate(ctx context.Context, projectID, userID uuid.UUID) (bool, error)

	// ListMembers returns the users holding a membership in projectID,
	// ordered by join time.
	ListMembers(ctx context.Context, projectID uuid.UUID) ([]*domain.User, error)

	// WithTx returns a MembershipStore that runs its queries in tx.
	WithTx(tx *sql.Tx) MembershipStore
}
