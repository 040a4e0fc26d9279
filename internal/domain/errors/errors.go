// Package errors holds the domain failures surfaced to API clients. Each value
// is a pkg/errors AppError so handlers can map it straight to a status code;
// attach the underlying cause with WithCause.
package errors

import (
	pkgerrors "github.com/wekeepgrowing/project-planner/pkg/errors"
)

// Authentication
var (
	ErrInvalidCredentials = pkgerrors.NewAppError(pkgerrors.ErrInvalidArgument, "Incorrect email or password", nil)
	ErrInvalidToken       = pkgerrors.NewAppError(pkgerrors.ErrUnauthenticated, "Invalid authentication credentials", nil)
	ErrInvalidGoogleToken = pkgerrors.NewAppError(pkgerrors.ErrUnauthenticated, "Invalid or expired Google token", nil)
	ErrEmailInUse         = pkgerrors.NewAppError(pkgerrors.ErrConflict, "Email already in use.", nil)
)

// Lookups and ownership
var (
	ErrUserNotFound    = pkgerrors.NewAppError(pkgerrors.ErrNotFound, "User not found.", nil)
	ErrProjectNotFound = pkgerrors.NewAppError(pkgerrors.ErrNotFound, "Project not found.", nil)
	ErrTaskNotFound    = pkgerrors.NewAppError(pkgerrors.ErrNotFound, "Task not found.", nil)
	ErrTagNotFound     = pkgerrors.NewAppError(pkgerrors.ErrNotFound, "Tag not found.", nil)
	ErrForbidden       = pkgerrors.NewAppError(pkgerrors.ErrUnauthorized, "You do not have permission to modify this resource.", nil)
)

// Validation
var (
	ErrInvalidInput      = pkgerrors.NewAppError(pkgerrors.ErrInvalidArgument, "Invalid request.", nil)
	ErrPasswordTooLong   = pkgerrors.NewAppError(pkgerrors.ErrInvalidArgument, "password must be at most 72 bytes", nil)
	ErrTagOutsideProject = pkgerrors.NewAppError(pkgerrors.ErrInvalidArgument, "Tag does not belong to the task's project.", nil)
	ErrUnknownAssignee   = pkgerrors.NewAppError(pkgerrors.ErrInvalidArgument, "Assignee does not exist.", nil)
)

// AI task generation. Each failure reason is distinct so clients can tell an
// unusable model reply from an unreachable model.
var (
	ErrNoTaskArray        = pkgerrors.NewAppError(pkgerrors.ErrUpstream, "No task array found in the generated schedule.", nil)
	ErrMalformedTaskArray = pkgerrors.NewAppError(pkgerrors.ErrUpstream, "The generated schedule could not be decoded.", nil)
	ErrCompletionFailed   = pkgerrors.NewAppError(pkgerrors.ErrUpstream, "Task generation failed.", nil)
	ErrGeneratorDisabled  = pkgerrors.NewAppError(pkgerrors.ErrNotImplemented, "AI task generation is not configured.", nil)
)

// Invalid wraps a validation failure with a client-facing message.
func Invalid(message string, cause error) *pkgerrors.AppError {
	return pkgerrors.NewAppError(pkgerrors.ErrInvalidArgument, message, cause)
}

// Internal wraps a store or infrastructure failure. The message is generic;
// the cause is only logged.
func Internal(cause error) *pkgerrors.AppError {
	return pkgerrors.NewAppError(pkgerrors.ErrInternal, "Internal server error.", cause)
}
