package service

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the services. Callers match them with errors.Is.
var (
	// ErrNotFound indicates the addressed entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrProjectNotFound indicates the project does not exist.
	ErrProjectNotFound = fmt.Errorf("%w: project", ErrNotFound)

	// ErrTaskNotFound indicates the task does not exist.
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)

	// ErrUserNotFound indicates the user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrForbidden indicates the acting user may not perform the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrBadRequest indicates the request violates a business rule or input constraint.
	ErrBadRequest = errors.New("bad request")

	// ErrAssigneeNotMember indicates a task assignee is neither the project owner nor a member.
	ErrAssigneeNotMember = fmt.Errorf("%w: assignee must be a project member", ErrBadRequest)

	// ErrCannotRemoveOwner indicates an attempt to remove the owner from their own project.
	ErrCannotRemoveOwner = fmt.Errorf("%w: cannot remove the project owner", ErrBadRequest)

	// ErrConflict indicates the request collides with existing state.
	ErrConflict = errors.New("conflict")

	// ErrEmailTaken indicates a registration with an email already in use.
	ErrEmailTaken = fmt.Errorf("%w: email already registered", ErrConflict)

	// ErrInvalidCredentials indicates a login with an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrUnauthenticated indicates the token subject no longer resolves to a user.
	ErrUnauthenticated = errors.New("could not validate credentials")
)

// ServiceError wraps an unexpected failure with the operation it interrupted.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// badRequest wraps a domain validation error so it also matches ErrBadRequest.
func badRequest(err error) error {
	return fmt.Errorf("%w: %w", ErrBadRequest, err)
}
