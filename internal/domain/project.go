package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxTitleLength bounds project and task titles.
const MaxTitleLength = 200

// Project groups tasks and the users allowed to work on them.
// OwnerID is set at creation and never reassigned.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Members is populated by the service layer and includes the owner.
	Members []*User `json:"members"`
}

// NewProject creates a validated Project owned by ownerID.
func NewProject(title, description string, ownerID uuid.UUID) (*Project, error) {
	now := time.Now().UTC()
	project := &Project{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(title),
		Description: description,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := project.Validate(); err != nil {
		return nil, err
	}

	return project, nil
}

// Validate checks if the Project has valid data.
func (p *Project) Validate() error {
	if p.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty")
	}
	if p.OwnerID == uuid.Nil {
		return NewValidationError("owner_id", "cannot be empty")
	}
	return validateTitle(p.Title)
}

// ProjectPatch carries a partial project update. Unset fields are left unchanged.
type ProjectPatch struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
}

// Apply copies the supplied fields onto p and validates the result.
// An explicit null description clears it; a null title is rejected.
func (patch ProjectPatch) Apply(p *Project) error {
	if patch.Title.Set {
		if patch.Title.Null {
			return NewValidationError("title", "cannot be empty")
		}
		p.Title = strings.TrimSpace(patch.Title.Value)
	}
	if patch.Description.Set {
		p.Description = patch.Description.Value
	}
	if err := p.Validate(); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "cannot be empty")
	}
	if len(title) > MaxTitleLength {
		return NewValidationError("title", "must be at most 200 characters long")
	}
	return nil
}
