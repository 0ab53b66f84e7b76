package service_test

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/devsprint/devsprint-api/internal/domain"
	"github.com/devsprint/devsprint-api/internal/service"
	"github.com/devsprint/devsprint-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// memBoard is an in-memory stand-in for the postgres stores. Transactions
// are driven through sqlmock, so WithTx returns the same store.
type memBoard struct {
	mu       sync.Mutex
	users    map[uuid.UUID]domain.User
	projects map[uuid.UUID]domain.Project
	members  []domain.Membership
	tasks    map[uuid.UUID]domain.Task
	order    []uuid.UUID

	// afterTaskRead runs once after the next unlocked task read.
	afterTaskRead func()
}

func newMemBoard() *memBoard {
	return &memBoard{
		users:    make(map[uuid.UUID]domain.User),
		projects: make(map[uuid.UUID]domain.Project),
		tasks:    make(map[uuid.UUID]domain.Task),
	}
}

func (b *memBoard) memberCount(projectID, userID uuid.UUID) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, m := range b.members {
		if m.ProjectID == projectID && m.UserID == userID {
			n++
		}
	}
	return n
}

func (b *memBoard) taskCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.tasks)
}

func (b *memBoard) isMemberLocked(projectID, userID uuid.UUID) bool {
	for _, m := range b.members {
		if m.ProjectID == projectID && m.UserID == userID {
			return true
		}
	}
	return false
}

type memUserStore struct{ b *memBoard }

func (s memUserStore) Create(_ context.Context, user *domain.User) error {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	for _, u := range s.b.users {
		if u.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	s.b.users[user.ID] = *user
	return nil
}

func (s memUserStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	u, ok := s.b.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &u, nil
}

func (s memUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	for _, u := range s.b.users {
		if u.Email == domain.NormalizeEmail(email) {
			return &u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s memUserStore) List(_ context.Context) ([]*domain.User, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	users := make([]*domain.User, 0, len(s.b.users))
	for _, u := range s.b.users {
		u := u
		users = append(users, &u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].FullName < users[j].FullName })
	return users, nil
}

func (s memUserStore) WithTx(*sql.Tx) store.UserStore { return s }

type memProjectStore struct{ b *memBoard }

func (s memProjectStore) Create(_ context.Context, project *domain.Project) error {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	p := *project
	p.Members = nil
	s.b.projects[p.ID] = p
	return nil
}

func (s memProjectStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Project, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	p, ok := s.b.projects[id]
	if !ok {
		return nil, store.ErrProjectNotFound
	}
	return &p, nil
}

func (s memProjectStore) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return s.GetByID(ctx, id)
}

func (s memProjectStore) ListForUser(_ context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	projects := []*domain.Project{}
	for _, p := range s.b.projects {
		if p.OwnerID == userID || s.b.isMemberLocked(p.ID, userID) {
			p := p
			projects = append(projects, &p)
		}
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].Title < projects[j].Title })
	return projects, nil
}

func (s memProjectStore) Update(_ context.Context, project *domain.Project) error {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	if _, ok := s.b.projects[project.ID]; !ok {
		return store.ErrProjectNotFound
	}
	p := *project
	p.Members = nil
	s.b.projects[p.ID] = p
	return nil
}

func (s memProjectStore) Delete(_ context.Context, id uuid.UUID) error {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	if _, ok := s.b.projects[id]; !ok {
		return store.ErrProjectNotFound
	}
	delete(s.b.projects, id)
	kept := s.b.members[:0]
	for _, m := range s.b.members {
		if m.ProjectID != id {
			kept = append(kept, m)
		}
	}
	s.b.members = kept
	for taskID, t := range s.b.tasks {
		if t.ProjectID == id {
			delete(s.b.tasks, taskID)
		}
	}
	return nil
}

func (s memProjectStore) WithTx(*sql.Tx) store.ProjectStore { return s }

type memMembershipStore struct{ b *memBoard }

func (s memMembershipStore) Add(_ context.Context, membership *domain.Membership) (bool, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	if s.b.isMemberLocked(membership.ProjectID, membership.UserID) {
		return false, nil
	}
	s.b.members = append(s.b.members, *membership)
	return true, nil
}

func (s memMembershipStore) Remove(_ context.Context, projectID, userID uuid.UUID) (bool, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	for i, m := range s.b.members {
		if m.ProjectID == projectID && m.UserID == userID {
			s.b.members = append(s.b.members[:i], s.b.members[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s memMembershipStore) IsMember(_ context.Context, projectID, userID uuid.UUID) (bool, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	return s.b.isMemberLocked(projectID, userID), nil
}

func (s memMembershipStore) IsMemberForUpdate(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	return s.IsMember(ctx, projectID, userID)
}

func (s memMembershipStore) ListMembers(_ context.Context, projectID uuid.UUID) ([]*domain.User, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	users := []*domain.User{}
	for _, m := range s.b.members {
		if m.ProjectID != projectID {
			continue
		}
		u := s.b.users[m.UserID]
		users = append(users, &u)
	}
	return users, nil
}

func (s memMembershipStore) WithTx(*sql.Tx) store.MembershipStore { return s }

type memTaskStore struct{ b *memBoard }

func (s memTaskStore) Create(_ context.Context, task *domain.Task) error {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	s.b.tasks[task.ID] = *task
	s.b.order = append(s.b.order, task.ID)
	return nil
}

func (s memTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, err := s.GetByIDForUpdate(ctx, id)

	s.b.mu.Lock()
	hook := s.b.afterTaskRead
	s.b.afterTaskRead = nil
	s.b.mu.Unlock()
	if hook != nil {
		hook()
	}
	return task, err
}

func (s memTaskStore) GetByIDForUpdate(_ context.Context, id uuid.UUID) (*domain.Task, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	t, ok := s.b.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return &t, nil
}

func (s memTaskStore) ListByProject(_ context.Context, projectID uuid.UUID) ([]*domain.Task, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	tasks := []*domain.Task{}
	for _, id := range s.b.order {
		t, ok := s.b.tasks[id]
		if ok && t.ProjectID == projectID {
			tasks = append(tasks, &t)
		}
	}
	return tasks, nil
}

func (s memTaskStore) Update(_ context.Context, task *domain.Task) error {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	if _, ok := s.b.tasks[task.ID]; !ok {
		return store.ErrTaskNotFound
	}
	s.b.tasks[task.ID] = *task
	return nil
}

func (s memTaskStore) Delete(_ context.Context, id uuid.UUID) error {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	if _, ok := s.b.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(s.b.tasks, id)
	return nil
}

func (s memTaskStore) UnassignInProject(_ context.Context, projectID, userID uuid.UUID) (int64, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	var n int64
	for id, t := range s.b.tasks {
		if t.ProjectID == projectID && t.IsAssignedTo(userID) {
			t.AssigneeID = nil
			s.b.tasks[id] = t
			n++
		}
	}
	return n, nil
}

func (s memTaskStore) WithTx(*sql.Tx) store.TaskStore { return s }

// harness wires the services to a memBoard and a sqlmock database.
type harness struct {
	board    *memBoard
	mock     sqlmock.Sqlmock
	projects service.ProjectService
	tasks    service.TaskService
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	board := newMemBoard()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	projects, err := service.NewProjectService(
		db,
		memUserStore{board},
		memProjectStore{board},
		memMembershipStore{board},
		memTaskStore{board},
		logger,
	)
	require.NoError(t, err)

	tasks, err := service.NewTaskService(
		db,
		memUserStore{board},
		memProjectStore{board},
		memMembershipStore{board},
		memTaskStore{board},
		logger,
	)
	require.NoError(t, err)

	return &harness{board: board, mock: mock, projects: projects, tasks: tasks}
}

func (h *harness) addUser(t *testing.T, email, name string, role domain.Role) *domain.User {
	t.Helper()
	user, err := domain.NewUser(email, "password123", name, role)
	require.NoError(t, err)
	user.HashedPassword = "hashed"
	user.Password = ""
	require.NoError(t, memUserStore{h.board}.Create(context.Background(), user))
	return user
}

func expectCommit(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectCommit()
}

func expectRollback(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectRollback()
}
