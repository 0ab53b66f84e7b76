// Package service contains the application use cases of the board and the
// membership and access policy that guards them. It orchestrates domain
// objects and the persistence interfaces defined in internal/store.
//
// Every operation receives the ID of the acting user, taken from a validated
// access token, and loads that user before deciding anything. Authorization
// failures are reported with the sentinel errors in errors.go, which the API
// layer maps to HTTP status codes:
//
//   - ErrNotFound (and its project, task and user variants): 404
//   - ErrForbidden: 403
//   - ErrBadRequest (and domain validation failures): 400
//   - ErrConflict (a registration with a taken email): 409
//   - ErrUnauthenticated and ErrInvalidCredentials: 401
//
// Operations that read state to decide a write run inside a single
// transaction started with store.RunInTransaction, locking the rows the
// decision depends on, so a concurrent membership change cannot leave a task
// assigned to a non-member.
package service
