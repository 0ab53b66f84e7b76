package api

import (
	"time"

	"github.com/devsprint/devsprint-api/internal/domain"
	"github.com/google/uuid"
)

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=6,max=72"`
	FullName string `json:"full_name" validate:"required,max=200"`
	Role     string `json:"role"      validate:"required,oneof=lead dev"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is the OAuth2-style access token response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   string `json:"expires_at,omitempty"`
}

// AuthResponse is returned by registration and JSON login.
type AuthResponse struct {
	TokenResponse
	User UserResponse `json:"user"`
}

// UserResponse is the public view of a user. Password hashes are never exposed.
type UserResponse struct {
	ID       uuid.UUID   `json:"id"`
	Email    string      `json:"email"`
	FullName string      `json:"full_name"`
	Role     domain.Role `json:"role"`
}

// CreateProjectRequest defines the payload for creating a project.
type CreateProjectRequest struct {
	Title       string `json:"title"       validate:"required,max=200"`
	Description string `json:"description"`
}

// UpdateProjectRequest defines the payload for a partial project update.
// Omitted fields are left unchanged.
type UpdateProjectRequest struct {
	Title       domain.Optional[string] `json:"title"`
	Description domain.Optional[string] `json:"description"`
}

// Patch converts the request into a domain patch.
func (r UpdateProjectRequest) Patch() domain.ProjectPatch {
	return domain.ProjectPatch{
		Title:       r.Title,
		Description: r.Description,
	}
}

// ProjectResponse is the public view of a project and its members.
type ProjectResponse struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	OwnerID     uuid.UUID      `json:"owner_id"`
	Members     []UserResponse `json:"members"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// AddMemberRequest defines the payload for adding a project member.
type AddMemberRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// CreateTaskRequest defines the payload for creating a task. Status defaults
// to todo and priority to medium.
type CreateTaskRequest struct {
	Title       string     `json:"title"       validate:"required,max=200"`
	Description string     `json:"description"`
	Status      string     `json:"status"      validate:"omitempty,oneof=todo inprogress done"`
	Priority    string     `json:"priority"    validate:"omitempty,oneof=low medium high"`
	AssigneeID  *uuid.UUID `json:"assignee_id"`
}

// UpdateTaskRequest defines the payload for a partial task update. An
// explicit null assignee_id unassigns the task.
type UpdateTaskRequest struct {
	Title       domain.Optional[string]              `json:"title"`
	Description domain.Optional[string]              `json:"description"`
	Status      domain.Optional[domain.TaskStatus]   `json:"status"`
	Priority    domain.Optional[domain.TaskPriority] `json:"priority"`
	AssigneeID  domain.Optional[uuid.UUID]           `json:"assignee_id"`
}

// Patch converts the request into a domain patch.
func (r UpdateTaskRequest) Patch() domain.TaskPatch {
	return domain.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		AssigneeID:  r.AssigneeID,
	}
}

// TaskResponse is the public view of a task.
type TaskResponse struct {
	ID          uuid.UUID           `json:"id"`
	ProjectID   uuid.UUID           `json:"project_id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      domain.TaskStatus   `json:"status"`
	Priority    domain.TaskPriority `json:"priority"`
	AssigneeID  *uuid.UUID          `json:"assignee_id"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
	}
}

func usersToResponse(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userToResponse(u))
	}
	return out
}

func projectToResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		OwnerID:     p.OwnerID,
		Members:     usersToResponse(p.Members),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func projectsToResponse(projects []*domain.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectToResponse(p))
	}
	return out
}

func taskToResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		AssigneeID:  t.AssigneeID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskToResponse(t))
	}
	return out
}
