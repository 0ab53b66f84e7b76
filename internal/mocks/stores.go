package mocks

import (
	"context"
	"database/sql"

	"github.com/devsprint/devsprint-api/internal/domain"
	"github.com/devsprint/devsprint-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserStore is a testify mock of store.UserStore.
type MockUserStore struct {
	mock.Mock
}

var _ store.UserStore = (*MockUserStore)(nil)

// Create is a mock implementation of store.UserStore.Create
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// GetByID is a mock implementation of store.UserStore.GetByID
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByEmail is a mock implementation of store.UserStore.GetByEmail
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// List is a mock implementation of store.UserStore.List
func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]*domain.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

// WithTx returns the mock itself so expectations apply inside transactions.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

// MockProjectStore is a testify mock of store.ProjectStore.
type MockProjectStore struct {
	mock.Mock
}

var _ store.ProjectStore = (*MockProjectStore)(nil)

// Create is a mock implementation of store.ProjectStore.Create
func (m *MockProjectStore) Create(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

// GetByID is a mock implementation of store.ProjectStore.GetByID
func (m *MockProjectStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if project, ok := args.Get(0).(*domain.Project); ok {
		return project, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByIDForUpdate is a mock implementation of store.ProjectStore.GetByIDForUpdate
func (m *MockProjectStore) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if project, ok := args.Get(0).(*domain.Project); ok {
		return project, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListForUser is a mock implementation of store.ProjectStore.ListForUser
func (m *MockProjectStore) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	args := m.Called(ctx, userID)
	if projects, ok := args.Get(0).([]*domain.Project); ok {
		return projects, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.ProjectStore.Update
func (m *MockProjectStore) Update(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

// Delete is a mock implementation of store.ProjectStore.Delete
func (m *MockProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// WithTx returns the mock itself so expectations apply inside transactions.
func (m *MockProjectStore) WithTx(tx *sql.Tx) store.ProjectStore {
	return m
}

// MockMembershipStore is a testify mock of store.MembershipStore.
type MockMembershipStore struct {
	mock.Mock
}

var _ store.MembershipStore = (*MockMembershipStore)(nil)

// Add is a mock implementation of store.MembershipStore.Add
func (m *MockMembershipStore) Add(ctx context.Context, membership *domain.Membership) (bool, error) {
	args := m.Called(ctx, membership)
	return args.Bool(0), args.Error(1)
}

// Remove is a mock implementation of store.MembershipStore.Remove
func (m *MockMembershipStore) Remove(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, projectID, userID)
	return args.Bool(0), args.Error(1)
}

// IsMember is a mock implementation of store.MembershipStore.IsMember
func (m *MockMembershipStore) IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, projectID, userID)
	return args.Bool(0), args.Error(1)
}

// IsMemberForUpdate is a mock implementation of store.MembershipStore.IsMemberForUpdate
func (m *MockMembershipStore) IsMemberForUpdate(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, projectID, userID)
	return args.Bool(0), args.Error(1)
}

// ListMembers is a mock implementation of store.MembershipStore.ListMembers
func (m *MockMembershipStore) ListMembers(ctx context.Context, projectID uuid.UUID) ([]*domain.User, error) {
	args := m.Called(ctx, projectID)
	if users, ok := args.Get(0).([]*domain.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

// WithTx returns the mock itself so expectations apply inside transactions.
func (m *MockMembershipStore) WithTx(tx *sql.Tx) store.MembershipStore {
	return m
}

// MockTaskStore is a testify mock of store.TaskStore.
type MockTaskStore struct {
	mock.Mock
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// Create is a mock implementation of store.TaskStore.Create
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

// GetByID is a mock implementation of store.TaskStore.GetByID
func (m *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if task, ok := args.Get(0).(*domain.Task); ok {
		return task, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByIDForUpdate is a mock implementation of store.TaskStore.GetByIDForUpdate
func (m *MockTaskStore) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if task, ok := args.Get(0).(*domain.Task); ok {
		return task, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListByProject is a mock implementation of store.TaskStore.ListByProject
func (m *MockTaskStore) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error) {
	args := m.Called(ctx, projectID)
	if tasks, ok := args.Get(0).([]*domain.Task); ok {
		return tasks, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.TaskStore.Update
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

// Delete is a mock implementation of store.TaskStore.Delete
func (m *MockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// UnassignInProject is a mock implementation of store.TaskStore.UnassignInProject
func (m *MockTaskStore) UnassignInProject(ctx context.Context, projectID, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, projectID, userID)
	return args.Get(0).(int64), args.Error(1)
}

// WithTx returns the mock itself so expectations apply inside transactions.
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}
