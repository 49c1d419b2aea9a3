package errors

import "net/http"

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// Error taxonomy of the booking core. Handlers map these to response
// codes with errors.As; anything outside this set is a 500.
var (
	ErrValidation         = NewHTTPError(http.StatusBadRequest, "missing required field")
	ErrSlotNotFound       = NewHTTPError(http.StatusNotFound, "invalid slot")
	ErrInvalidTransition  = NewHTTPError(http.StatusConflict, "operation not allowed for current slot status")
	ErrConflict           = NewHTTPError(http.StatusConflict, "slot not available")
	ErrNoActiveBooking    = NewHTTPError(http.StatusNotFound, "no active booking")
	ErrAlreadyActive      = NewHTTPError(http.StatusConflict, "slot already has an active booking")
	ErrUnauthorized       = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrInvalidCredentials = NewHTTPError(http.StatusUnauthorized, "invalid credentials")
)
