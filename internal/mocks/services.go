package mocks

import (
	"context"

	"github.com/devsprint/devsprint-api/internal/domain"
	"github.com/devsprint/devsprint-api/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserService is a testify mock of service.UserService.
type MockUserService struct {
	mock.Mock
}

var _ service.UserService = (*MockUserService)(nil)

// Register is a mock implementation of service.UserService.Register
func (m *MockUserService) Register(
	ctx context.Context,
	email, password, fullName string,
	role domain.Role,
) (*domain.User, error) {
	args := m.Called(ctx, email, password, fullName, role)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// Authenticate is a mock implementation of service.UserService.Authenticate
func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetUser is a mock implementation of service.UserService.GetUser
func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListUsers is a mock implementation of service.UserService.ListUsers
func (m *MockUserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]*domain.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockProjectService is a testify mock of service.ProjectService.
type MockProjectService struct {
	mock.Mock
}

var _ service.ProjectService = (*MockProjectService)(nil)

func (m *MockProjectService) project(args mock.Arguments) (*domain.Project, error) {
	if project, ok := args.Get(0).(*domain.Project); ok {
		return project, args.Error(1)
	}
	return nil, args.Error(1)
}

// CreateProject is a mock implementation of service.ProjectService.CreateProject
func (m *MockProjectService) CreateProject(
	ctx context.Context,
	actorID uuid.UUID,
	title, description string,
) (*domain.Project, error) {
	return m.project(m.Called(ctx, actorID, title, description))
}

// GetProject is a mock implementation of service.ProjectService.GetProject
func (m *MockProjectService) GetProject(ctx context.Context, actorID, projectID uuid.UUID) (*domain.Project, error) {
	return m.project(m.Called(ctx, actorID, projectID))
}

// ListProjects is a mock implementation of service.ProjectService.ListProjects
func (m *MockProjectService) ListProjects(ctx context.Context, actorID uuid.UUID) ([]*domain.Project, error) {
	args := m.Called(ctx, actorID)
	if projects, ok := args.Get(0).([]*domain.Project); ok {
		return projects, args.Error(1)
	}
	return nil, args.Error(1)
}

// UpdateProject is a mock implementation of service.ProjectService.UpdateProject
func (m *MockProjectService) UpdateProject(
	ctx context.Context,
	actorID, projectID uuid.UUID,
	patch domain.ProjectPatch,
) (*domain.Project, error) {
	return m.project(m.Called(ctx, actorID, projectID, patch))
}

// DeleteProject is a mock implementation of service.ProjectService.DeleteProject
func (m *MockProjectService) DeleteProject(ctx context.Context, actorID, projectID uuid.UUID) error {
	args := m.Called(ctx, actorID, projectID)
	return args.Error(0)
}

// ListMembers is a mock implementation of service.ProjectService.ListMembers
func (m *MockProjectService) ListMembers(ctx context.Context, actorID, projectID uuid.UUID) ([]*domain.User, error) {
	args := m.Called(ctx, actorID, projectID)
	if users, ok := args.Get(0).([]*domain.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

// AddMember is a mock implementation of service.ProjectService.AddMember
func (m *MockProjectService) AddMember(
	ctx context.Context,
	actorID, projectID, targetID uuid.UUID,
) (*domain.Project, error) {
	return m.project(m.Called(ctx, actorID, projectID, targetID))
}

// RemoveMember is a mock implementation of service.ProjectService.RemoveMember
func (m *MockProjectService) RemoveMember(ctx context.Context, actorID, projectID, targetID uuid.UUID) error {
	args := m.Called(ctx, actorID, projectID, targetID)
	return args.Error(0)
}

// CanAccessProject is a mock implementation of service.ProjectService.CanAccessProject
func (m *MockProjectService) CanAccessProject(ctx context.Context, userID, projectID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, projectID)
	return args.Bool(0), args.Error(1)
}

// MockTaskService is a testify mock of service.TaskService.
type MockTaskService struct {
	mock.Mock
}

var _ service.TaskService = (*MockTaskService)(nil)

func (m *MockTaskService) task(args mock.Arguments) (*domain.Task, error) {
	if task, ok := args.Get(0).(*domain.Task); ok {
		return task, args.Error(1)
	}
	return nil, args.Error(1)
}

// CreateTask is a mock implementation of service.TaskService.CreateTask
func (m *MockTaskService) CreateTask(
	ctx context.Context,
	actorID, projectID uuid.UUID,
	input service.CreateTaskInput,
) (*domain.Task, error) {
	return m.task(m.Called(ctx, actorID, projectID, input))
}

// GetTask is a mock implementation of service.TaskService.GetTask
func (m *MockTaskService) GetTask(ctx context.Context, actorID, taskID uuid.UUID) (*domain.Task, error) {
	return m.task(m.Called(ctx, actorID, taskID))
}

// ListTasks is a mock implementation of service.TaskService.ListTasks
func (m *MockTaskService) ListTasks(ctx context.Context, actorID, projectID uuid.UUID) ([]*domain.Task, error) {
	args := m.Called(ctx, actorID, projectID)
	if tasks, ok := args.Get(0).([]*domain.Task); ok {
		return tasks, args.Error(1)
	}
	return nil, args.Error(1)
}

// UpdateTask is a mock implementation of service.TaskService.UpdateTask
func (m *MockTaskService) UpdateTask(
	ctx context.Context,
	actorID, taskID uuid.UUID,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	return m.task(m.Called(ctx, actorID, taskID, patch))
}

// DeleteTask is a mock implementation of service.TaskService.DeleteTask
func (m *MockTaskService) DeleteTask(ctx context.Context, actorID, taskID uuid.UUID) error {
	args := m.Called(ctx, actorID, taskID)
	return args.Error(0)
}
