package errors

import (
	"fmt"
	"net/http"
)

var (
	// Tokens.
	ErrInvalidSigningMethod = fmt.Errorf("invalid token signing method")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrTokenExpired         = fmt.Errorf("token has expired")

	// Authorization.
	ErrInvalidAuthHeader  = fmt.Errorf("invalid authorization header format")
	ErrInvalidCredentials = fmt.Errorf("Invalid credentials")
	ErrUnauthorized       = fmt.Errorf("Authentication required")
	ErrForbidden          = fmt.Errorf("Forbidden")

	// Context.
	ErrUserIDNotFoundInContext = fmt.Errorf("user id not found in request context")

	// General.
	ErrNotFound   = fmt.Errorf("record not found")
	ErrBadRequest = fmt.Errorf("bad request")
	ErrConflict   = fmt.Errorf("record already exists")
)

// HttpError carries an HTTP status code, a user-facing message and the
// internal error with optional structured context for logging. Controllers
// and services build these; utils.ErrorResponse renders them.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error {
	return e.Err
}

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

func BadRequest(message string) *HttpError {
	return NewHttpError(http.StatusBadRequest, message, nil, nil)
}

func NotFound(message string) *HttpError {
	return NewHttpError(http.StatusNotFound, message, nil, nil)
}

func Forbidden(message string) *HttpError {
	return NewHttpError(http.StatusForbidden, message, nil, nil)
}

func Internal(err error) *HttpError {
	return NewHttpError(http.StatusInternalServerError, "Internal server error", err, nil)
}
