package store

import (
	"context"
	"database/sql"

	"github.com/devsprint/devsprint-api/internal/domain"
	"github.com/google/uuid"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task.
	// Returns ErrInvalidEntity if the project or assignee does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// GetByIDForUpdate retrieves a task by ID and locks its row until the
	// transaction ends. Returns ErrTaskNotFound if the task does not exist.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// ListByProject returns the tasks of a project, oldest first.
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)

	// Update persists all mutable fields of the task.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// UnassignInProject clears the assignee of every task in projectID that
	// is assigned to userID and returns how many tasks changed.
	UnassignInProject(ctx context.Context, projectID, userID uuid.UUID) (int64, error)

	// WithTx returns a TaskStore that runs its queries in tx.
	WithTx(tx *sql.Tx) TaskStore
}
