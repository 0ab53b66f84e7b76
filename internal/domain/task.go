package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the board column a task sits in. Any status may move to any
// other status; the board lets users drag cards freely between columns.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "inprogress"
	TaskStatusDone       TaskStatus = "done"
)

// IsValid reports whether s is one of the known statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}

// TaskPriority ranks tasks within a column.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// IsValid reports whether p is one of the known priorities.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	default:
		return false
	}
}

// Task is a single work item on a project's board.
type Task struct {
	ID          uuid.UUID    `json:"id"`
	ProjectID   uuid.UUID    `json:"project_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	AssigneeID  *uuid.UUID   `json:"assignee_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// NewTask creates a validated Task. An empty status defaults to todo and an
// empty priority to medium.
func NewTask(
	projectID uuid.UUID,
	title, description string,
	status TaskStatus,
	priority TaskPriority,
	assigneeID *uuid.UUID,
) (*Task, error) {
	if status == "" {
		status = TaskStatusTodo
	}
	if priority == "" {
		priority = TaskPriorityMedium
	}

	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		ProjectID:   projectID,
		Title:       strings.TrimSpace(title),
		Description: description,
		Status:      status,
		Priority:    priority,
		AssigneeID:  assigneeID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty")
	}
	if t.ProjectID == uuid.Nil {
		return NewValidationError("project_id", "cannot be empty")
	}
	if err := validateTitle(t.Title); err != nil {
		return err
	}
	if !t.Status.IsValid() {
		return NewValidationError("status", "must be one of: todo, inprogress, done")
	}
	if !t.Priority.IsValid() {
		return NewValidationError("priority", "must be one of: low, medium, high")
	}
	if t.AssigneeID != nil && *t.AssigneeID == uuid.Nil {
		return NewValidationError("assignee_id", "cannot be the nil UUID")
	}
	return nil
}

// IsAssignedTo reports whether the task is assigned to userID.
func (t *Task) IsAssignedTo(userID uuid.UUID) bool {
	return t.AssigneeID != nil && *t.AssigneeID == userID
}

// TaskPatch carries a partial task update. Unset fields are left unchanged;
// an explicit null assignee unassigns the task.
type TaskPatch struct {
	Title       Optional[string]       `json:"title"`
	Description Optional[string]       `json:"description"`
	Status      Optional[TaskStatus]   `json:"status"`
	Priority    Optional[TaskPriority] `json:"priority"`
	AssigneeID  Optional[uuid.UUID]    `json:"assignee_id"`
}

// AssigneeChanged reports whether the patch assigns the task to a user.
// Unassigning does not count, since it never needs a membership check.
func (patch TaskPatch) AssigneeChanged() bool {
	return patch.AssigneeID.Set && !patch.AssigneeID.Null
}

// Apply copies the supplied fields onto t and validates the result.
func (patch TaskPatch) Apply(t *Task) error {
	if patch.Title.Set {
		if patch.Title.Null {
			return NewValidationError("title", "cannot be empty")
		}
		t.Title = strings.TrimSpace(patch.Title.Value)
	}
	if patch.Description.Set {
		t.Description = patch.Description.Value
	}
	if patch.Status.Set {
		if patch.Status.Null {
			return NewValidationError("status", "cannot be null")
		}
		t.Status = patch.Status.Value
	}
	if patch.Priority.Set {
		if patch.Priority.Null {
			return NewValidationError("priority", "cannot be null")
		}
		t.Priority = patch.Priority.Value
	}
	if patch.AssigneeID.Set {
		t.AssigneeID = patch.AssigneeID.Ptr()
	}

	if err := t.Validate(); err != nil {
		return err
	}
	t.UpdatedAt = time.Now().UTC()
	return nil
}
