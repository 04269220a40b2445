package apperr

import "fmt"

// ValidationError rejects bad input before anything irreversible happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Reason)
}

// PersistenceError wraps a failed read/write of durable storage.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// NetworkError wraps a failed call to an upstream collaborator.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

type AuthErrorCode string

const (
	AuthBadCredentials   AuthErrorCode = "BAD_CREDENTIALS"
	AuthDuplicateAccount AuthErrorCode = "DUPLICATE_ACCOUNT"
	AuthRateLimited      AuthErrorCode = "RATE_LIMITED"
	AuthProviderDown     AuthErrorCode = "PROVIDER_DOWN"
)

// AuthError carries the enumerated identity-provider failure codes the UI
// maps to messages.
type AuthError struct {
	Code AuthErrorCode
	Err  error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth: %s: %v", e.Code, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }
