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

// PostgresProjectStore implements store.ProjectStore on PostgreSQL.
type PostgresProjectStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProjectStore creates a PostgresProjectStore. If logger is nil,
// slog.Default() is used.
func NewPostgresProjectStore(db store.DBTX, logger *slog.Logger) *PostgresProjectStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresProjectStore{
		db:     db,
		logger: logger.With(slog.String("component", "project_store")),
	}
}

var _ store.ProjectStore = (*PostgresProjectStore)(nil)

// Create implements store.ProjectStore.
func (s *PostgresProjectStore) Create(ctx context.Context, project *domain.Project) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := project.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (id, title, description, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		project.ID,
		project.Title,
		project.Description,
		project.OwnerID,
		project.CreatedAt,
		project.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: owner %s does not exist", store.ErrInvalidEntity, project.OwnerID)
		}
		log.Error("failed to create project",
			redact.ErrorAttr(err),
			slog.String("project_id", project.ID.String()))
		return MapError(err)
	}

	log.Info("project created",
		slog.String("project_id", project.ID.String()),
		slog.String("owner_id", project.OwnerID.String()))
	return nil
}

// GetByID implements store.ProjectStore.
func (s *PostgresProjectStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return s.get(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
}

// GetByIDForUpdate implements store.ProjectStore.
func (s *PostgresProjectStore) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return s.get(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1 FOR UPDATE`, id)
}

func (s *PostgresProjectStore) get(ctx context.Context, query string, id uuid.UUID) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	project, err := scanProject(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("project not found", slog.String("project_id", id.String()))
			return nil, store.ErrProjectNotFound
		}
		log.Error("failed to get project",
			redact.ErrorAttr(err),
			slog.String("project_id", id.String()))
		return nil, MapError(err)
	}
	return project, nil
}

// ListForUser implements store.ProjectStore.
func (s *PostgresProjectStore) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.title, p.description, p.owner_id, p.created_at, p.updated_at
		FROM projects p
		LEFT JOIN project_members m ON m.project_id = p.id AND m.user_id = $1
		WHERE p.owner_id = $1 OR m.user_id IS NOT NULL
		ORDER BY p.created_at DESC, p.id
	`, userID)
	if err != nil {
		log.Error("failed to list projects",
			redact.ErrorAttr(err),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer closeRows(ctx, log, rows)

	projects, err := collect(rows, scanProject)
	if err != nil {
		log.Error("failed to scan projects", redact.ErrorAttr(err))
		return nil, MapError(err)
	}
	return projects, nil
}

// Update implements store.ProjectStore.
func (s *PostgresProjectStore) Update(ctx context.Context, project *domain.Project) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := project.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE projects SET title = $2, description = $3, updated_at = $4
		WHERE id = $1
	`, project.ID, project.Title, project.Description, project.UpdatedAt)
	if err != nil {
		log.Error("failed to update project",
			redact.ErrorAttr(err),
			slog.String("project_id", project.ID.String()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrProjectNotFound)
}

// Delete implements store.ProjectStore.
func (s *PostgresProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete project",
			redact.ErrorAttr(err),
			slog.String("project_id", id.String()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrProjectNotFound); err != nil {
		return err
	}

	log.Info("project deleted", slog.String("project_id", id.String()))
	return nil
}

// WithTx implements store.ProjectStore.
func (s *PostgresProjectStore) WithTx(tx *sql.Tx) store.ProjectStore {
	return &PostgresProjectStore{db: tx, logger: s.logger}
}
