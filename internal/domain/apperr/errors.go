// Package apperr holds the error classes shared by the directory, goal and insights
// domains. Callers match them with errors.Is.
package apperr

import "errors"

var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrValidation         = errors.New("validation failed")
	ErrConstraint         = errors.New("value outside allowed domain")
	ErrNotFound           = errors.New("not found")
	ErrAuthFailure        = errors.New("invalid employee id or password")
)
