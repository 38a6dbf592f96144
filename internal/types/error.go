package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures so handlers can choose a status and message.
type ErrorKind string

const (
	KindAuthorization ErrorKind = "authorization"
	KindValidation    ErrorKind = "validation"
	KindConflict      ErrorKind = "conflict"
	KindNotFound      ErrorKind = "not_found"
	KindInternal      ErrorKind = "internal"
)

// CustomError is an error with an HTTP status code and a machine readable type.
type CustomError struct {
	Code    int       `json:"code"`
	Message string    `json:"message"`
	Type    string    `json:"type"`
	Kind    ErrorKind `json:"-"`
	Field   string    `json:"field,omitempty"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// NewValidationError reports a payload field that failed its constraints.
func NewValidationError(field, message string) *CustomError {
	return &CustomError{
		Code:    400,
		Message: message,
		Type:    "validation." + field,
		Kind:    KindValidation,
		Field:   field,
	}
}

// NewConflictError reports a write rejected because another record holds the value.
func NewConflictError(errorType, message string) *CustomError {
	return &CustomError{
		Code:    400,
		Message: message,
		Type:    errorType,
		Kind:    KindConflict,
	}
}

// NewNotFoundError reports a missing record.
func NewNotFoundError(resource, id string) *CustomError {
	return &CustomError{
		Code:    404,
		Message: fmt.Sprintf("%s '%s' not found", resource, id),
		Type:    resource + ".notFound",
		Kind:    KindNotFound,
	}
}

// NewAuthorizationError reports a missing or rejected staff session.
func NewAuthorizationError(message string) *CustomError {
	return &CustomError{
		Code:    401,
		Message: message,
		Type:    "authorization",
		Kind:    KindAuthorization,
	}
}

// AsCustomError unwraps err into a CustomError, if it carries one.
func AsCustomError(err error) (*CustomError, bool) {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// IsKind reports whether err is a CustomError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	ce, ok := AsCustomError(err)
	return ok && ce.Kind == kind
}
