package errors

import "fmt"

// HTTPError carries a status code and a user-facing message across the
// delivery boundary. Domain errors are mapped to HTTPError values in each
// vertical's delivery/http/errors.go.
type HTTPError struct {
	Status  int
	Code    int
	Message string
}

// NewHTTPError creates an HTTPError whose error code mirrors the HTTP status.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Code: status, Message: message}
}

// NewHTTPErrorWithCode creates an HTTPError with a distinct application code.
func NewHTTPErrorWithCode(status, code int, message string) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error %d: %s", e.Status, e.Message)
}
