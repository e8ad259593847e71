package errors

import (
	"errors"
	"fmt"
)

// Common error types for the gateway
var (
	// Login flow errors
	ErrMissingCode   = errors.New("missing authorization code")
	ErrStateMismatch = errors.New("state mismatch")
	ErrTokenExchange = errors.New("token exchange failed")
	ErrProfileFetch  = errors.New("profile fetch failed")

	// Request errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("invalid request")

	// Downstream errors
	ErrUpstream        = errors.New("upstream request failed")
	ErrUpstreamTimeout = errors.New("upstream request timed out")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
