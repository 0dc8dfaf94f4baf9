package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a missing, invalid, expired or mismatched credential or token.
var ErrUnauthorized = errors.New("unauthorized")

// ErrUpload indicates that the external media storage rejected or failed an upload.
var ErrUpload = errors.New("upload failed")

// ErrInternal indicates a persistence or token-signing failure not attributable to caller input.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP status code alongside a message and an optional wrapped cause.
// Handlers translate it (and the sentinels above) uniformly in respondError.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
