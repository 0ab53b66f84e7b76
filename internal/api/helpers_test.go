package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devsprint/devsprint-api/internal/api/shared"
	"github.com/devsprint/devsprint-api/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newRequest builds a request with an optional JSON body, an authenticated
// user and chi URL parameters given as name/value pairs.
func newRequest(
	t *testing.T,
	method, target string,
	body any,
	userID uuid.UUID,
	params ...string,
) *http.Request {
	t.Helper()
	require.True(t, len(params)%2 == 0, "params must be name/value pairs")

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	ctx := req.Context()
	if userID != uuid.Nil {
		ctx = shared.WithUserID(ctx, userID)
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for i := 0; i < len(params); i += 2 {
			rctx.URLParams.Add(params[i], params[i+1])
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[shared.ErrorResponse](t, rec).Error
}

func testUser(role domain.Role) *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		ID:             uuid.New(),
		Email:          string(role) + "@example.com",
		FullName:       "Test " + string(role),
		Role:           role,
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuuABCDEFGHIJKLMNOPQRSTUVWXYZ01234",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func testProject(owner *domain.User, members ...*domain.User) *domain.Project {
	now := time.Now().UTC()
	return &domain.Project{
		ID:          uuid.New(),
		Title:       "Sprint board",
		Description: "Q3 work",
		OwnerID:     owner.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
		Members:     append([]*domain.User{owner}, members...),
	}
}

func testTask(projectID uuid.UUID, assignee *uuid.UUID) *domain.Task {
	now := time.Now().UTC()
	return &domain.Task{
		ID:         uuid.New(),
		ProjectID:  projectID,
		Title:      "Write the API",
		Status:     domain.TaskStatusTodo,
		Priority:   domain.TaskPriorityMedium,
		AssigneeID: assignee,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
