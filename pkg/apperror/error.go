package apperror

import (
	"net/http"

	"aimlaw-web/pkg/validation"
)

type AppError struct {
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Err     error                  `json:"-"`
	Fields  validation.FieldErrors `json:"fields,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation carries per-field violations so the client can show all of them at once
func Validation(message string, fields validation.FieldErrors) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Fields:  fields,
	}
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// BadGateway reports a failure of an upstream provider
func BadGateway(message string, err error) *AppError {
	return New(http.StatusBadGateway, message, err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
