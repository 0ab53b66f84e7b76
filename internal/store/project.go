package store

import (
	"context"
	"database/sql"

	"github.com/devsprint/devsprint-api/internal/domain"
	"github.com/google/uuid"
)

// ProjectStore defines the interface for project data persistence.
// Returned projects never have Members populated; use MembershipStore.
type ProjectStore interface {
	// Create saves a new project.
	Create(ctx context.Context, project *domain.Project) error

	// GetByID retrieves a project by ID.
	// Returns ErrProjectNotFound if the project does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)

	// GetByIDForUpdate retrieves a project and locks its row until the
	// surrounding transaction ends. Only meaningful on a store from WithTx.
	// Returns ErrProjectNotFound if the project does not exist.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Project, error)

	// ListForUser returns the projects userID owns or is a member of,
	// newest first.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error)

	// Update persists title and description changes.
	// Returns ErrProjectNotFound if the project does not exist.
	Update(ctx context.Context, project *domain.Project) error

	// Delete removes a project. Its tasks and memberships are removed by the
	// database cascade in the same statement.
	// Returns ErrProjectNotFound if the project does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a ProjectStore that runs its queries in tx.
	WithTx(tx *sql.Tx) ProjectStore
}
