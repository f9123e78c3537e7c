package models

import "errors"

// Request-level error taxonomy. Every failure surfaced to an API caller maps
// onto one of these; storage connectivity failures propagate as-is.
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSuchProgress     = errors.New("no progress found for this course")
	ErrUserNotFound       = errors.New("user not found")
	ErrCourseNotFound     = errors.New("course not found")
)
