package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/devsprint/devsprint-api/internal/domain"
	"github.com/devsprint/devsprint-api/internal/redact"
	"github.com/google/uuid"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

const userColumns = `id, email, hashed_password, full_name, role, created_at, updated_at`

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		user domain.User
		role string
	)
	if err := row.Scan(
		&user.ID,
		&user.Email,
		&user.HashedPassword,
		&user.FullName,
		&role,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	user.Role = domain.Role(role)
	return &user, nil
}

const projectColumns = `id, title, description, owner_id, created_at, updated_at`

func scanProject(row rowScanner) (*domain.Project, error) {
	var project domain.Project
	if err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.OwnerID,
		&project.CreatedAt,
		&project.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &project, nil
}

const taskColumns = `id, project_id, title, description, status, priority, assignee_id, created_at, updated_at`

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task     domain.Task
		status   string
		priority string
		assignee uuid.NullUUID
	)
	if err := row.Scan(
		&task.ID,
		&task.ProjectID,
		&task.Title,
		&task.Description,
		&status,
		&priority,
		&assignee,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		return nil, err
	}
	task.Status = domain.TaskStatus(status)
	task.Priority = domain.TaskPriority(priority)
	if assignee.Valid {
		id := assignee.UUID
		task.AssigneeID = &id
	}
	return &task, nil
}

// nullUUID converts an optional ID into a value database/sql can bind.
func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

// closeRows closes rows and logs a failure instead of masking the caller's result.
func closeRows(ctx context.Context, log *slog.Logger, rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		log.ErrorContext(ctx, "failed to close rows", redact.ErrorAttr(err))
	}
}

// collect scans every row with scan. It returns an empty, non-nil slice when
// there are no rows so handlers encode [] rather than null.
func collect[T any](rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
