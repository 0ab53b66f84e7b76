package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/devsprint/devsprint-api/internal/api/shared"
	"github.com/devsprint/devsprint-api/internal/domain"
	"github.com/devsprint/devsprint-api/internal/platform/logger"
	"github.com/devsprint/devsprint-api/internal/service"
	"github.com/devsprint/devsprint-api/internal/service/auth"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	userService service.UserService
	jwtService  auth.JWTService
	logger      *slog.Logger
	now         func() time.Time
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userService service.UserService,
	jwtService auth.JWTService,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AuthHandler")
	}
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		logger:      logger.With(slog.String("component", "auth_handler")),
		now:         time.Now,
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RegisterRequest
	if err := decodeRequest(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := h.userService.Register(r.Context(), req.Email, req.Password, req.FullName, domain.Role(req.Role))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create user")
		return
	}

	token, err := h.issueToken(r.Context(), user)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate authentication token")
		return
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		TokenResponse: token,
		User:          userToResponse(user),
	})
}

// Login handles POST /api/auth/login with a JSON body.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeRequest(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := h.userService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to log in")
		return
	}

	token, err := h.issueToken(r.Context(), user)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		TokenResponse: token,
		User:          userToResponse(user),
	})
}

// Token handles POST /api/token, the OAuth2 password grant. The form
// carries the email in the username field.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, shared.MaxRequestBodyBytes)
	if err := r.ParseForm(); err != nil {
		HandleAPIError(w, r, ErrInvalidRequestBody, "")
		return
	}

	username := strings.TrimSpace(r.PostForm.Get("username"))
	password := r.PostForm.Get("password")
	if username == "" {
		HandleAPIError(w, r, domain.NewValidationError("username", "required field"), "")
		return
	}
	if password == "" {
		HandleAPIError(w, r, domain.NewValidationError("password", "required field"), "")
		return
	}

	user, err := h.userService.Authenticate(r.Context(), username, password)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to log in")
		return
	}

	token, err := h.issueToken(r.Context(), user)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, token)
}

func (h *AuthHandler) issueToken(ctx context.Context, user *domain.User) (TokenResponse, error) {
	token, err := h.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		return TokenResponse{}, err
	}
	return TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   h.now().Add(h.jwtService.TokenLifetime()).UTC().Format(time.RFC3339),
	}, nil
}
