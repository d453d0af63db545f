package errors

import "net/http"

// HTTPError is a domain error already translated to an HTTP status. Delivery
// layers produce these in mapError; pkg/response picks the status from it.
type HTTPError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

func (e HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(statusCode int, message string) HTTPError {
	return HTTPError{StatusCode: statusCode, Message: message}
}

// Common errors shared across delivery layers.
var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "invalid request")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)
