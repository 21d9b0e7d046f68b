package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the HTTP status a delivery layer should
// answer with.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// NewHTTPError creates an HTTPError whose response error code equals the status.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: statusCode, Message: message}
}

func NewBadRequestError(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

func NewNotFoundError(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message)
}

// ErrInternalServerError is returned for errors a delivery layer does not know.
var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
