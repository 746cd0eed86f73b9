package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindInvalidInput     Kind = "invalid_input"
	KindMediaDecode      Kind = "media_decode"
	KindModelCall        Kind = "model_call"
	KindResponseParse    Kind = "response_parse"
	KindSchemaValidation Kind = "schema_validation"
	KindInternal         Kind = "internal"
)

// AppError carries the HTTP status and the human-readable detail returned to
// the caller. Op names the operation that failed and is only logged.
type AppError struct {
	Kind    Kind
	Code    int
	Message string
	Op      string
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

func newError(kind Kind, code int, op string, err error, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func InvalidInput(op string, err error, message string) *AppError {
	return newError(KindInvalidInput, http.StatusBadRequest, op, err, message)
}

func MediaDecode(op string, err error, message string) *AppError {
	return newError(KindMediaDecode, http.StatusInternalServerError, op, err, message)
}

func ModelCall(op string, err error, message string) *AppError {
	return newError(KindModelCall, http.StatusInternalServerError, op, err, message)
}

func ResponseParse(op string, err error, message string) *AppError {
	return newError(KindResponseParse, http.StatusInternalServerError, op, err, message)
}

func SchemaValidation(op string, err error, message string) *AppError {
	return newError(KindSchemaValidation, http.StatusUnprocessableEntity, op, err, message)
}

func Internal(op string, err error, message string) *AppError {
	return newError(KindInternal, http.StatusInternalServerError, op, err, message)
}

// HTTPStatus returns the status code for err, 500 for anything that is not an
// AppError.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
