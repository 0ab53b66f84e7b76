package auth

import (
	"errors"
	"fmt"
)

// Token validation errors. Every variant wraps ErrInvalidToken, so callers
// that only care whether a token is usable can match on that alone.
var (
	// ErrInvalidToken indicates the token is malformed, forged, or otherwise unusable.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = fmt.Errorf("%w: token has expired", ErrInvalidToken)

	// ErrTokenNotYetValid indicates the token's iat/nbf lies in the future.
	ErrTokenNotYetValid = fmt.Errorf("%w: token not yet valid", ErrInvalidToken)

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")
)

// ErrPasswordMismatch is returned by PasswordHasher.Compare when the
// plaintext does not match the hash.
var ErrPasswordMismatch = errors.New("password does not match")
