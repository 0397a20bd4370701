package auth

import (
	"errors"
	"fmt"

	"github.com/menta2k/vision-bridge/pkg/bridge"
)

var (
	// ErrWrongPassword is returned when the password does not match the account.
	ErrWrongPassword = errors.New("wrong password")
	// ErrWeakPassword is returned when the service rejects a password as too weak.
	ErrWeakPassword = errors.New("weak password")
	// ErrInvalidActionCode is returned when a reset/verification code is invalid or expired.
	ErrInvalidActionCode = errors.New("invalid action code")
	// ErrUserNotFound is returned when no account exists for the given identifier.
	ErrUserNotFound = errors.New("user not found")
)

// wrapError maps the native error codes callers commonly branch on to
// sentinel errors. Everything else passes through unmodified.
func wrapError(err error) error {
	var be *bridge.Error
	if !errors.As(err, &be) {
		return err
	}
	switch be.Code {
	case "ERROR_WRONG_PASSWORD":
		return fmt.Errorf("%w: %s", ErrWrongPassword, be.Message)
	case "ERROR_WEAK_PASSWORD":
		return fmt.Errorf("%w: %s", ErrWeakPassword, be.Message)
	case "ERROR_INVALID_ACTION_CODE", "ERROR_EXPIRED_ACTION_CODE":
		return fmt.Errorf("%w: %s", ErrInvalidActionCode, be.Message)
	case "ERROR_USER_NOT_FOUND":
		return fmt.Errorf("%w: %s", ErrUserNotFound, be.Message)
	}
	return err
}
