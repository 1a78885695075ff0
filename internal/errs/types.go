package errs

import "strings"

// FieldError is a field-level validation error.
// Example:
//
//	{ "field": "tax", "error": "must be at least 0" }
type FieldError struct {
	// Field is the JSON name of the offending field.
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the error type serialized to API clients.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "WORD_NOT_FOUND").
//   - Message: human-friendly message, safe to show to users.
//   - Status: HTTP status code.
//   - Override: true when the client may display Message verbatim.
//   - Errors: per-field validation errors.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	// Errors holds field-level validation errors, empty for non-validation failures.
	Errors []FieldError `json:"errors"`
}

// Error returns the client message, so logging the error shows what the client saw.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// It matches on type only; Code and Status are not compared.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
