package errs

import (
	"net/http"
)

// Error codes for dictionary rule violations.
const (
	CodeInvalidInput      = "INVALID_INPUT"
	CodeWordNotFound      = "WORD_NOT_FOUND"
	CodeWordAlreadyExists = "WORD_ALREADY_EXISTS"
)

// codeOrDefault returns *code when set, otherwise the formatted status text.
func codeOrDefault(code *string, status int) string {
	if code != nil {
		return *code
	}
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code overrides the default "BAD_REQUEST" when non-nil; errors carries
// field-level validation failures.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError) *HTTPError {
	return &HTTPError{
		Code:     codeOrDefault(code, http.StatusBadRequest),
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	return &HTTPError{
		Code:     codeOrDefault(code, http.StatusNotFound),
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewConflictError creates a 409 Conflict HTTPError, used when a write
// collides with an existing record.
func NewConflictError(message string, override bool, code *string) *HTTPError {
	return &HTTPError{
		Code:     codeOrDefault(code, http.StatusConflict),
		Message:  message,
		Status:   http.StatusConflict,
		Override: override,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text; the real cause is only logged.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}
