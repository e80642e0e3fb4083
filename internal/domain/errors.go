// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrConflict           = errors.New("conflict")
	ErrServiceUnavailable = errors.New("service unavailable")

	// Auth errors
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")

	// Organization-related errors
	ErrOrganizationNotFound = errors.New("organization not found")

	// Project-related errors
	ErrProjectNotFound     = errors.New("project not found")
	ErrInvalidOutcome      = errors.New("outcome number must be between 1 and 11")
	ErrDuplicateOutcome    = errors.New("outcome already recorded for project")
	ErrMissingOrganization = errors.New("project requires an organization")

	// Report-related errors
	ErrReportNotFound         = errors.New("report not found")
	ErrInvalidStateTransition = errors.New("invalid report status transition")
	ErrTagNotFound            = errors.New("tag not found")

	// Referee-related errors
	ErrRefereeNotFound = errors.New("referee not found")

	// Prompt template errors
	ErrTemplateNotFound = errors.New("prompt template not found")
)
