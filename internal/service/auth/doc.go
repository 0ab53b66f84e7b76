// Package auth issues and validates HS256 access tokens and hashes and
// verifies user passwords with bcrypt.
package auth
