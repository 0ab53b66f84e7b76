package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/devsprint/devsprint-api/internal/domain"
	"github.com/devsprint/devsprint-api/internal/platform/logger"
	"github.com/devsprint/devsprint-api/internal/redact"
	"github.com/devsprint/devsprint-api/internal/store"
	"github.com/google/uuid"
)

// CreateTaskInput holds the fields of a new task.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	AssigneeID  *uuid.UUID
}

// TaskService manages the tasks of a project.
type TaskService interface {
	// CreateTask adds a task to a project the acting user can access.
	CreateTask(ctx context.Context, actorID, projectID uuid.UUID, input CreateTaskInput) (*domain.Task, error)

	// GetTask returns a task from a project the acting user can access.
	GetTask(ctx context.Context, actorID, taskID uuid.UUID) (*domain.Task, error)

	// ListTasks returns the tasks of a project, oldest first.
	ListTasks(ctx context.Context, actorID, projectID uuid.UUID) ([]*domain.Task, error)

	// UpdateTask applies a partial update. Any user with project access may
	// update a task, including its status and assignee.
	UpdateTask(ctx context.Context, actorID, taskID uuid.UUID, patch domain.TaskPatch) (*domain.Task, error)

	// DeleteTask removes a task. Only the owning lead may delete.
	DeleteTask(ctx context.Context, actorID, taskID uuid.UUID) error
}

type taskService struct {
	db       *sql.DB
	users    store.UserStore
	projects store.ProjectStore
	members  store.MembershipStore
	tasks    store.TaskStore
	logger   *slog.Logger
}

// NewTaskService creates a TaskService.
func NewTaskService(
	db *sql.DB,
	users store.UserStore,
	projects store.ProjectStore,
	members store.MembershipStore,
	tasks store.TaskStore,
	logger *slog.Logger,
) (TaskService, error) {
	if db == nil || users == nil || projects == nil || members == nil || tasks == nil {
		return nil, errors.New("task service: db and all stores are required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &taskService{
		db:       db,
		users:    users,
		projects: projects,
		members:  members,
		tasks:    tasks,
		logger:   logger.With(slog.String("component", "task_service")),
	}, nil
}

func (s *taskService) CreateTask(
	ctx context.Context,
	actorID, projectID uuid.UUID,
	input CreateTaskInput,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	actor, err := loadActor(ctx, s.users, actorID)
	if err != nil {
		return nil, err
	}

	var created *domain.Task
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		members := s.members.WithTx(tx)

		project, err := loadProject(ctx, s.projects.WithTx(tx), projectID, false)
		if err != nil {
			return err
		}
		if err := requireAccess(ctx, members, actor, project); err != nil {
			return err
		}

		task, err := domain.NewTask(
			project.ID,
			input.Title,
			input.Description,
			input.Status,
			input.Priority,
			input.AssigneeID,
		)
		if err != nil {
			return badRequest(err)
		}
		if task.AssigneeID != nil {
			if err := requireAssignable(ctx, members, project, *task.AssigneeID); err != nil {
				return err
			}
		}

		if err := s.tasks.WithTx(tx).Create(ctx, task); err != nil {
			return NewServiceError("create_task", "failed to save task", err)
		}
		created = task
		return nil
	})
	if err != nil {
		if !isClientError(err) {
			log.Error("failed to create task",
				redact.ErrorAttr(err),
				slog.String("project_id", projectID.String()))
		}
		return nil, err
	}

	log.Info("task created",
		slog.String("task_id", created.ID.String()),
		slog.String("project_id", created.ProjectID.String()))
	return created, nil
}

func (s *taskService) GetTask(ctx context.Context, actorID, taskID uuid.UUID) (*domain.Task, error) {
	actor, err := loadActor(ctx, s.users, actorID)
	if err != nil {
		return nil, err
	}
	task, err := loadTask(ctx, s.tasks, taskID, false)
	if err != nil {
		return nil, err
	}
	project, err := loadProject(ctx, s.projects, task.ProjectID, false)
	if err != nil {
		return nil, err
	}
	if err := requireAccess(ctx, s.members, actor, project); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) ListTasks(ctx context.Context, actorID, projectID uuid.UUID) ([]*domain.Task, error) {
	actor, err := loadActor(ctx, s.users, actorID)
	if err != nil {
		return nil, err
	}
	project, err := loadProject(ctx, s.projects, projectID, false)
	if err != nil {
		return nil, err
	}
	if err := requireAccess(ctx, s.members, actor, project); err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, NewServiceError("list_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

func (s *taskService) UpdateTask(
	ctx context.Context,
	actorID, taskID uuid.UUID,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	actor, err := loadActor(ctx, s.users, actorID)
	if err != nil {
		return nil, err
	}

	var updated *domain.Task
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		members := s.members.WithTx(tx)
		tasks := s.tasks.WithTx(tx)

		current, err := loadTask(ctx, tasks, taskID, false)
		if err != nil {
			return err
		}
		// Lock the project before the task, in the same order as RemoveMember,
		// then re-read the task under its row lock.
		project, err := loadProject(ctx, s.projects.WithTx(tx), current.ProjectID, true)
		if err != nil {
			return err
		}
		task, err := loadTask(ctx, tasks, taskID, true)
		if err != nil {
			return err
		}
		if err := requireAccess(ctx, members, actor, project); err != nil {
			return err
		}

		if err := patch.Apply(task); err != nil {
			return badRequest(err)
		}
		if patch.AssigneeChanged() {
			if err := requireAssignable(ctx, members, project, *task.AssigneeID); err != nil {
				return err
			}
		}

		if err := tasks.Update(ctx, task); err != nil {
			if errors.Is(err, store.ErrTaskNotFound) {
				return ErrTaskNotFound
			}
			return NewServiceError("update_task", "failed to save task", err)
		}
		updated = task
		return nil
	})
	if err != nil {
		if !isClientError(err) {
			log.Error("failed to update task", redact.ErrorAttr(err), slog.String("task_id", taskID.String()))
		}
		return nil, err
	}

	log.Debug("task updated", slog.String("task_id", updated.ID.String()))
	return updated, nil
}

func (s *taskService) DeleteTask(ctx context.Context, actorID, taskID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	actor, err := loadActor(ctx, s.users, actorID)
	if err != nil {
		return err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		tasks := s.tasks.WithTx(tx)

		task, err := loadTask(ctx, tasks, taskID, true)
		if err != nil {
			return err
		}
		project, err := loadProject(ctx, s.projects.WithTx(tx), task.ProjectID, false)
		if err != nil {
			return err
		}
		if !domain.CanManageProject(actor, project) {
			return ErrForbidden
		}
		if err := tasks.Delete(ctx, task.ID); err != nil {
			if errors.Is(err, store.ErrTaskNotFound) {
				return ErrTaskNotFound
			}
			return NewServiceError("delete_task", "failed to delete task", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("task deleted", slog.String("task_id", taskID.String()))
	return nil
}

// isClientError reports whether err is caused by the request rather than the system.
func isClientError(err error) bool {
	return errors.Is(err, ErrBadRequest) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrUnauthenticated)
}
