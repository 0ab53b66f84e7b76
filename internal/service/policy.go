package service

import (
	"context"
	"errors"

	"github.com/devsprint/devsprint-api/internal/domain"
	"github.com/devsprint/devsprint-api/internal/store"
	"github.com/google/uuid"
)

// loadActor resolves the acting user. A subject that no longer exists is
// treated as an authentication failure rather than a missing resource.
func loadActor(ctx context.Context, users store.UserStore, actorID uuid.UUID) (*domain.User, error) {
	user, err := users.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, NewServiceError("load_actor", "failed to load acting user", err)
	}
	return user, nil
}

// loadProject fetches a project, locking its row when forUpdate is set.
func loadProject(
	ctx context.Context,
	projects store.ProjectStore,
	projectID uuid.UUID,
	forUpdate bool,
) (*domain.Project, error) {
	var (
		project *domain.Project
		err     error
	)
	if forUpdate {
		project, err = projects.GetByIDForUpdate(ctx, projectID)
	} else {
		project, err = projects.GetByID(ctx, projectID)
	}
	if err != nil {
		if errors.Is(err, store.ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, NewServiceError("load_project", "failed to load project", err)
	}
	return project, nil
}

// loadTask fetches a task, locking its row when forUpdate is set.
func loadTask(
	ctx context.Context,
	tasks store.TaskStore,
	taskID uuid.UUID,
	forUpdate bool,
) (*domain.Task, error) {
	var (
		task *domain.Task
		err  error
	)
	if forUpdate {
		task, err = tasks.GetByIDForUpdate(ctx, taskID)
	} else {
		task, err = tasks.GetByID(ctx, taskID)
	}
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, NewServiceError("load_task", "failed to load task", err)
	}
	return task, nil
}

// canAccessProject reports whether user is the owner or a member of project.
func canAccessProject(
	ctx context.Context,
	members store.MembershipStore,
	user *domain.User,
	project *domain.Project,
) (bool, error) {
	if domain.IsOwner(user.ID, project) {
		return true, nil
	}
	isMember, err := members.IsMember(ctx, project.ID, user.ID)
	if err != nil {
		return false, NewServiceError("check_access", "failed to check membership", err)
	}
	return domain.CanAccessProject(user.ID, project, isMember), nil
}

// requireAccess returns ErrForbidden unless user may access project.
func requireAccess(
	ctx context.Context,
	members store.MembershipStore,
	user *domain.User,
	project *domain.Project,
) error {
	ok, err := canAccessProject(ctx, members, user, project)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}

// requireAssignable returns ErrAssigneeNotMember unless assigneeID is the
// owner or a member of project. The membership row is locked so it cannot be
// removed before the surrounding transaction commits.
func requireAssignable(
	ctx context.Context,
	members store.MembershipStore,
	project *domain.Project,
	assigneeID uuid.UUID,
) error {
	if domain.IsOwner(assigneeID, project) {
		return nil
	}
	isMember, err := members.IsMemberForUpdate(ctx, project.ID, assigneeID)
	if err != nil {
		return NewServiceError("check_assignee", "failed to check assignee membership", err)
	}
	if !isMember {
		return ErrAssigneeNotMember
	}
	return nil
}

// attachMembers populates project.Members.
func attachMembers(ctx context.Context, members store.MembershipStore, project *domain.Project) error {
	list, err := members.ListMembers(ctx, project.ID)
	if err != nil {
		return NewServiceError("list_members", "failed to list project members", err)
	}
	project.Members = list
	return nil
}
