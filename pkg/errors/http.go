package errors

import "net/http"

// HTTPError is an error that carries the HTTP status it should be reported with.
type HTTPError struct {
	Code    int
	Message string
	Data    any
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// WithData returns a copy of e carrying extra payload for the response body.
func (e *HTTPError) WithData(data any) *HTTPError {
	return &HTTPError{Code: e.Code, Message: e.Message, Data: data}
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)

// NewValidationError wraps a binding/validation failure as a 400.
func NewValidationError(err error) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, err.Error())
}
