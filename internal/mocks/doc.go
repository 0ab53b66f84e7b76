// Package mocks provides shared test doubles for the store, auth and service
// interfaces.
//
// Store and service doubles are testify mocks: configure them with On(...)
// and check them with AssertExpectations. Auth doubles use function fields
// with static defaults, which keeps handler tests short:
//
//	jwtSvc := &mocks.MockJWTService{Token: "signed-token"}
//	hasher := &mocks.MockPasswordHasher{CompareErr: auth.ErrPasswordMismatch}
package mocks
