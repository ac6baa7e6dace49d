package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorBody is the wire format for every failed request.
// Message carries extra detail and is populated only in development mode.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

var exposeDetails bool

// SetExposeDetails toggles echoing internal error detail to clients.
// Called once from main; must stay off in production.
func SetExposeDetails(on bool) {
	exposeDetails = on
}

var sentinelStatus = map[error]int{
	apperrors.ErrNotFound:           http.StatusNotFound,
	apperrors.ErrBadRequest:         http.StatusBadRequest,
	apperrors.ErrConflict:           http.StatusBadRequest,
	apperrors.ErrUnauthorized:       http.StatusUnauthorized,
	apperrors.ErrForbidden:          http.StatusForbidden,
	apperrors.ErrInvalidCredentials: http.StatusUnauthorized,
	apperrors.ErrInvalidToken:       http.StatusUnauthorized,
	apperrors.ErrTokenExpired:       http.StatusUnauthorized,
}

// ErrorResponse translates any error into the HTTP status and JSON body the
// API promises: {"error": ...} plus a "message" detail in development mode.
// Internal errors are logged server-side and never leak outside development.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("request failed",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		body := ErrorBody{Error: httpErr.Message}
		if exposeDetails && httpErr.Err != nil {
			body.Message = httpErr.Err.Error()
		}
		return c.JSON(httpErr.Code, body)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msgs := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed on '%s'", fe.Field(), fe.Tag()))
		}
		return c.JSON(http.StatusBadRequest, ErrorBody{Error: "Validation failed: " + strings.Join(msgs, "; ")})
	}

	for sentinel, status := range sentinelStatus {
		if errors.Is(err, sentinel) {
			return c.JSON(status, ErrorBody{Error: sentinel.Error()})
		}
	}

	logger.Error("unexpected error", zap.Error(err))
	body := ErrorBody{Error: "Internal server error"}
	if exposeDetails {
		body.Message = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, body)
}
