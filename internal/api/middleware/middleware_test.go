package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devsprint/devsprint-api/internal/api/shared"
	"github.com/devsprint/devsprint-api/internal/mocks"
	"github.com/devsprint/devsprint-api/internal/service/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()

	jwtSvc := &mocks.MockJWTService{
		ValidateTokenFn: func(_ context.Context, token string) (*auth.Claims, error) {
			switch token {
			case "good":
				return &auth.Claims{UserID: userID, Subject: userID.String()}, nil
			case "expired":
				return nil, auth.ErrExpiredToken
			case "early":
				return nil, auth.ErrTokenNotYetValid
			case "broken":
				return nil, errors.New("keyring unavailable")
			default:
				return nil, auth.ErrInvalidToken
			}
		},
	}
	mw := NewAuthMiddleware(jwtSvc)

	var seen uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetUserID(r)
		require.True(t, ok)
		seen = id
		w.WriteHeader(http.StatusOK)
	})
	handler := mw.Authenticate(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantMsg    string
	}{
		{"valid token", "Bearer good", http.StatusOK, ""},
		{"lowercase scheme", "bearer good", http.StatusOK, ""},
		{"missing header", "", http.StatusUnauthorized, "Not authenticated"},
		{"wrong scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized, "Not authenticated"},
		{"empty token", "Bearer ", http.StatusUnauthorized, "Not authenticated"},
		{"expired token", "Bearer expired", http.StatusUnauthorized, "Could not validate credentials"},
		{"not yet valid token", "Bearer early", http.StatusUnauthorized, "Could not validate credentials"},
		{"invalid token", "Bearer forged", http.StatusUnauthorized, "Could not validate credentials"},
		{"validator failure", "Bearer broken", http.StatusInternalServerError, "Authentication error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seen = uuid.Nil
			req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, userID, seen)
				return
			}
			assert.Equal(t, uuid.Nil, seen, "next handler must not run")

			var body shared.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tc.wantMsg, body.Error)
			if tc.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestTraceMiddleware(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	var ctxTrace string
	handler := TraceMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxTrace = shared.GetTraceID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("generates trace id", func(t *testing.T) {
		buf.Reset()
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Len(t, ctxTrace, 32)
		assert.Equal(t, ctxTrace, rr.Header().Get(shared.TraceIDHeader))
		assert.Contains(t, buf.String(), ctxTrace)
		assert.Contains(t, buf.String(), `"status":418`)
	})

	t.Run("reuses inbound trace id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(shared.TraceIDHeader, "client-trace-1")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-trace-1", ctxTrace)
		assert.Equal(t, "client-trace-1", rr.Header().Get(shared.TraceIDHeader))
	})

	t.Run("rejects unsafe inbound trace id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(shared.TraceIDHeader, "bad id\"}")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Len(t, ctxTrace, 32)
	})
}

func TestTraceMiddlewareNilLogger(t *testing.T) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	handler := TraceMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rr.Header().Get(shared.TraceIDHeader))
}
