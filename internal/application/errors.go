package application

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrEmailExists          = errors.New("email already exists")
	ErrInvalidOrExpiredCode = errors.New("invalid or expired otp")
	ErrRegistrationMissing  = errors.New("registration data missing")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("incorrect credentials")
	ErrNoteNotFound         = errors.New("note not found")
)

// ValidationError carries field level details for malformed input
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// DeliveryError means the verification code could not be handed to the
// notification channel. The pending registration stays in place.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string { return fmt.Sprintf("deliver verification code: %v", e.Err) }
func (e *DeliveryError) Unwrap() error { return e.Err }

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
