package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that knows which status code it should be served with.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal server error")

// AsHTTPError unwraps err into an *HTTPError, if it is one.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
