package errors

import "fmt"

// HTTPError is an error that carries the HTTP status code the delivery
// layer should respond with.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// ErrInternalServerError is the generic fallback for unmapped errors.
var ErrInternalServerError = NewHTTPError(500, "internal server error")
