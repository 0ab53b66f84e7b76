package domain

import (
	"time"

	"github.com/google/uuid"
)

// Membership grants a user access to a project. The owner always holds one.
type Membership struct {
	ProjectID uuid.UUID `json:"project_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMembership creates a Membership for userID in projectID.
func NewMembership(projectID, userID uuid.UUID) (*Membership, error) {
	if projectID == uuid.Nil {
		return nil, NewValidationError("project_id", "cannot be empty")
	}
	if userID == uuid.Nil {
		return nil, NewValidationError("user_id", "cannot be empty")
	}
	return &Membership{
		ProjectID: projectID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}, nil
}
