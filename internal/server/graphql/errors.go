package graphql

import (
	"errors"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

// Error codes surfaced to API clients in the "code" extension. Internal
// messages (driver errors, wrapped causes) never leave the process; only
// this taxonomy does.
const (
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeExpiredToken       = "EXPIRED_TOKEN"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeOwnerNotFound      = "OWNER_NOT_FOUND"
	CodeTaskNotFound       = "TASK_NOT_FOUND"
	CodeOperationFailed    = "OPERATION_FAILED"
)

// Error is an API-boundary error carrying a stable machine-readable code.
// It implements gqlerrors.ExtendedError, so the code travels in the
// response's error extensions.
type Error struct {
	code    string
	message string
}

func (e *Error) Error() string { return e.message }

func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

// Code returns the machine-readable error code.
func (e *Error) Code() string { return e.code }

// mapError translates the internal error taxonomy into API-boundary errors.
// Domain errors keep their own distinguishable codes; anything unexpected
// collapses into OPERATION_FAILED with a generic message.
func mapError(err error) *Error {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return &Error{code: CodeInvalidCredentials, message: "invalid credentials"}
	case errors.Is(err, common.ErrUnauthenticated):
		return &Error{code: CodeUnauthenticated, message: "unauthenticated"}
	case errors.Is(err, common.ErrInvalidToken):
		return &Error{code: CodeInvalidToken, message: "invalid token"}
	case errors.Is(err, common.ErrTokenExpired):
		return &Error{code: CodeExpiredToken, message: "token expired"}
	case errors.Is(err, common.ErrDuplicateEmail):
		return &Error{code: CodeDuplicateEmail, message: "email already exists"}
	case errors.Is(err, common.ErrOwnerNotFound):
		return &Error{code: CodeOwnerNotFound, message: "owner not found"}
	case errors.Is(err, common.ErrTaskNotFound):
		return &Error{code: CodeTaskNotFound, message: "task not found"}
	default:
		return &Error{code: CodeOperationFailed, message: "operation failed"}
	}
}
