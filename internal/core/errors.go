// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrForeignKey   = errors.New("foreign key violation")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenRevoked = errors.New("token revoked")
)

const (
	MsgNotFound     = "Not Found"
	MsgUnauthorized = "Unauthorized"
	MsgForbidden    = "Forbidden"
	MsgInvalidData  = "The given data was invalid."
	MsgServerError  = "Internal Server Error"
)

// FieldErrors maps a request field to its failed rule messages.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

func (f FieldErrors) Any() bool {
	return len(f) > 0
}

func (f FieldErrors) Merge(other FieldErrors) {
	for field, msgs := range other {
		f[field] = append(f[field], msgs...)
	}
}

type AppError struct {
	Err        error
	Message    string
	StatusCode int
	Fields     FieldErrors
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

func NewAppError(err error, message string, statusCode int) *AppError {
	return &AppError{
		Err:        err,
		Message:    message,
		StatusCode: statusCode,
	}
}

func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func NotFoundError() *AppError {
	return NewAppError(ErrNotFound, MsgNotFound, http.StatusNotFound)
}

func UnauthorizedError(message string) *AppError {
	if message == "" {
		message = MsgUnauthorized
	}
	return NewAppError(ErrUnauthorized, message, http.StatusUnauthorized)
}

func ForbiddenError(message string) *AppError {
	if message == "" {
		message = MsgForbidden
	}
	return NewAppError(ErrForbidden, message, http.StatusForbidden)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrInvalidInput, message, http.StatusBadRequest)
}

func ValidationError(fields FieldErrors) *AppError {
	return &AppError{
		Err:        ErrInvalidInput,
		Message:    MsgInvalidData,
		StatusCode: http.StatusUnprocessableEntity,
		Fields:     fields,
	}
}

// FieldError is a single-field validation failure.
func FieldError(field, message string) *AppError {
	return ValidationError(FieldErrors{field: {message}})
}

// Token failures all surface as a plain 401. The wrapped sentinel keeps
// the cause available to logs and metrics.
func TokenExpiredError() *AppError {
	return NewAppError(ErrTokenExpired, MsgUnauthorized, http.StatusUnauthorized)
}

func TokenInvalidError() *AppError {
	return NewAppError(ErrTokenInvalid, MsgUnauthorized, http.StatusUnauthorized)
}

func TokenRevokedError() *AppError {
	return NewAppError(ErrTokenRevoked, MsgUnauthorized, http.StatusUnauthorized)
}
