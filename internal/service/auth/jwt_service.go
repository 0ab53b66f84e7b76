package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService issues and validates access tokens.
type JWTService interface {
	// GenerateToken creates a signed access token whose subject is userID.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken verifies the signature and time claims of tokenString
	// and returns its claims. All failures wrap ErrInvalidToken.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// TokenLifetime reports how long issued tokens stay valid.
	TokenLifetime() time.Duration
}

// Claims is the validated content of an access token.
type Claims struct {
	UserID    uuid.UUID
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
