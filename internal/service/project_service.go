package service

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

// ProjectService manages projects and their membership.
type ProjectService interface {
	// CreateProject creates a project owned by the acting lead, who also
	// becomes its first member.
	CreateProject(ctx context.Context, actorID uuid.UUID, title, description string) (*domain.Project, error)

	// GetProject returns a project with its members.
	GetProject(ctx context.Context, actorID, projectID uuid.UUID) (*domain.Project, error)

	// ListProjects returns every project the acting user owns or belongs to.
	ListProjects(ctx context.Context, actorID uuid.UUID) ([]*domain.Project, error)

	// UpdateProject applies a partial update. Only the owner may update.
	UpdateProject(
		ctx context.Context,
		actorID, projectID uuid.UUID,
		patch domain.ProjectPatch,
	) (*domain.Project, error)

	// DeleteProject removes a project with its tasks and memberships.
	DeleteProject(ctx context.Context, actorID, projectID uuid.UUID) error

	// ListMembers returns the members of a project, owner included.
	ListMembers(ctx context.Context, actorID, projectID uuid.UUID) ([]*domain.User, error)

	// AddMember grants targetID access to the project. Adding an existing
	// member changes nothing.
	AddMember(ctx context.Context, actorID, projectID, targetID uuid.UUID) (*domain.Project, error)

	// RemoveMember revokes targetID's access and unassigns their tasks in the
	// project. Removing a non-member changes nothing.
	RemoveMember(ctx context.Context, actorID, projectID, targetID uuid.UUID) error

	// CanAccessProject reports whether userID may read the project and work on its tasks.
	CanAccessProject(ctx context.Context, userID, projectID uuid.UUID) (bool, error)
}

type projectService struct {
	db       *sql.DB
	users    store.UserStore
	projects store.ProjectStore
	members  store.MembershipStore
	tasks    store.TaskStore
	logger   *slog.Logger
}

// NewProjectService creates a ProjectService.
func NewProjectService(
	db *sql.DB,
	users store.UserStore,
	projects store.ProjectStore,
	members store.MembershipStore,
	tasks store.TaskStore,
	logger *slog.Logger,
) (ProjectService, error) {
	if db == nil || users == nil || projects == nil || members == nil || tasks == nil {
		return nil, errors.New("project service: db and all stores are required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &projectService{
		db:       db,
		users:    users,
		projects: projects,
		members:  members,
		tasks:    tasks,
		logger:   logger.With(slog.String("component", "project_service")),
	}, nil
}

func (s *projectService) CreateProject(
	ctx context.Context,
	actorID uuid.UUID,
	title, description string,
) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	actor, err := loadActor(ctx, s.users, actorID)
	if err != nil {
		return nil, err
	}
	if !domain.CanCreateProject(actor) {
		log.Debug("non-lead attempted to create a project", slog.String("user_id", actorID.String()))
		return nil, ErrForbidden
	}

	project, err := domain.NewProject(title, description, actor.ID)
	if err != nil {
		return nil, badRequest(err)
	}
	ownerMembership, err := domain.NewMembership(project.ID, actor.ID)
	if err != nil {
		return nil, badRequest(err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.projects.WithTx(tx).Create(ctx, project); err != nil {
			return NewServiceError("create_project", "failed to save project", err)
		}
		if _, err := s.members.WithTx(tx).Add(ctx, ownerMembership); err != nil {
			return NewServiceError("create_project", "failed to add owner membership", err)
		}
		return nil
	})
	if err != nil {
		log.Error("failed to create project", redact.ErrorAttr(err), slog.String("user_id", actorID.String()))
		return nil, err
	}

	project.Members = []*domain.User{actor}
	log.Info("project created",
		slog.String("project_id", project.ID.String()),
		slog.String("owner_id", actor.ID.String()))
	return project, nil
}

func (s *projectService) GetProject(ctx context.Context, actorID, projectID uuid.UUID) (*domain.Project, error) {
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
	if err := attachMembers(ctx, s.members, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) ListProjects(ctx context.Context, actorID uuid.UUID) ([]*domain.Project, error) {
	actor, err := loadActor(ctx, s.users, actorID)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.ListForUser(ctx, actor.ID)
	if err != nil {
		return nil, NewServiceError("list_projects", "failed to list projects", err)
	}
	for _, project := range projects {
		if err := attachMembers(ctx, s.members, project); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (s *projectService) UpdateProject(
	ctx context.Context,
	actorID, projectID uuid.UUID,
	patch domain.ProjectPatch,
) (*domain.Project, error) {
	actor, err := loadActor(ctx, s.users, actorID)
	if err != nil {
		return nil, err
	}

	var updated *domain.Project
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		project, err := loadProject(ctx, s.projects.WithTx(tx), projectID, true)
		if err != nil {
			return err
		}
		if !domain.IsOwner(actor.ID, project) {
			return ErrForbidden
		}
		if err := patch.Apply(project); err != nil {
			return badRequest(err)
		}
		if err := s.projects.WithTx(tx).Update(ctx, project); err != nil {
			return NewServiceError("update_project", "failed to save project", err)
		}
		updated = project
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := attachMembers(ctx, s.members, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *projectService) DeleteProject(ctx context.Context, actorID, projectID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	actor, err := loadActor(ctx, s.users, actorID)
	if err != nil {
		return err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		project, err := loadProject(ctx, s.projects.WithTx(tx), projectID, true)
		if err != nil {
			return err
		}
		if !domain.IsOwner(actor.ID, project) {
			return ErrForbidden
		}
		if err := s.projects.WithTx(tx).Delete(ctx, project.ID); err != nil {
			return NewServiceError("delete_project", "failed to delete project", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("project deleted", slog.String("project_id", projectID.String()))
	return nil
}

func (s *projectService) ListMembers(ctx context.Context, actorID, projectID uuid.UUID) ([]*domain.User, error) {
	project, err := s.GetProject(ctx, actorID, projectID)
	if err != nil {
		return nil, err
	}
	return project.Members, nil
}

func (s *projectService) AddMember(
	ctx context.Context,
	actorID, projectID, targetID uuid.UUID,
) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	actor, err := loadActor(ctx, s.users, actorID)
	if err != nil {
		return nil, err
	}

	var project *domain.Project
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		p, err := loadProject(ctx, s.projects.WithTx(tx), projectID, true)
		if err != nil {
			return err
		}
		if !domain.CanManageProject(actor, p) {
			return ErrForbidden
		}
		if _, err := s.users.WithTx(tx).GetByID(ctx, targetID); err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				return ErrUserNotFound
			}
			return NewServiceError("add_member", "failed to load target user", err)
		}

		membership, err := domain.NewMembership(p.ID, targetID)
		if err != nil {
			return badRequest(err)
		}
		added, err := s.members.WithTx(tx).Add(ctx, membership)
		if err != nil {
			return NewServiceError("add_member", "failed to add member", err)
		}
		if added {
			log.Info("member added",
				slog.String("project_id", p.ID.String()),
				slog.String("user_id", targetID.String()))
		}
		project = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := attachMembers(ctx, s.members, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) RemoveMember(ctx context.Context, actorID, projectID, targetID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	actor, err := loadActor(ctx, s.users, actorID)
	if err != nil {
		return err
	}

	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		project, err := loadProject(ctx, s.projects.WithTx(tx), projectID, true)
		if err != nil {
			return err
		}
		if !domain.CanManageProject(actor, project) {
			return ErrForbidden
		}
		if domain.IsOwner(targetID, project) {
			return ErrCannotRemoveOwner
		}

		members := s.members.WithTx(tx)
		isMember, err := members.IsMemberForUpdate(ctx, project.ID, targetID)
		if err != nil {
			return NewServiceError("remove_member", "failed to check membership", err)
		}
		if !isMember {
			return nil
		}

		unassigned, err := s.tasks.WithTx(tx).UnassignInProject(ctx, project.ID, targetID)
		if err != nil {
			return NewServiceError("remove_member", "failed to unassign tasks", err)
		}
		if _, err := members.Remove(ctx, project.ID, targetID); err != nil {
			return NewServiceError("remove_member", "failed to remove member", err)
		}

		log.Info("member removed",
			slog.String("project_id", project.ID.String()),
			slog.String("user_id", targetID.String()),
			slog.Int64("tasks_unassigned", unassigned))
		return nil
	})
}

func (s *projectService) CanAccessProject(ctx context.Context, userID, projectID uuid.UUID) (bool, error) {
	user, err := loadActor(ctx, s.users, userID)
	if err != nil {
		return false, err
	}
	project, err := loadProject(ctx, s.projects, projectID, false)
	if err != nil {
		return false, err
	}
	ok, err := canAccessProject(ctx, s.members, user, project)
	if err != nil {
		return false, fmt.Errorf("can access project: %w", err)
	}
	return ok, nil
}
