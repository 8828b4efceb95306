package services

import (
	"errors"
	"fmt"
)

// ErrNotFound covers both a genuinely missing row and an ownership mismatch.
// The two are indistinguishable so that non-owners cannot probe for existence.
var ErrNotFound = errors.New("not found")

// ErrInvalidCredentials covers both an unknown email and a wrong password,
// indistinguishable so that login attempts cannot probe for accounts.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ValidationError marks missing or malformed client input; handlers map it
// to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
