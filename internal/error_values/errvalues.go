package errorvalues

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrTaskNotFound      = errors.New("task doesn't exist")
	ErrTemplateNotFound  = errors.New("habit template doesn't exist")
	ErrTimeEntryNotFound = errors.New("time entry doesn't exist")
	ErrTimerRunning      = errors.New("task already has a running timer")

	ErrValidation       = errors.New("validation error")
	ErrDatabaseNotReady = errors.New("database is not ready")
	ErrUpstream         = errors.New("upstream service error")
)

// ValidationError carries per-field messages. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (ve *ValidationError) Error() string {
	keys := make([]string, 0, len(ve.Fields))
	for k := range ve.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+ve.Fields[k])
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (ve *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
