package errors

import "fmt"

type ErrorCode string

const (
	ErrInternalServer             ErrorCode = "INTERNAL_SERVER_ERROR"
	ErrInvalidInput               ErrorCode = "INVALID_INPUT"
	ErrInvalidRequestData         ErrorCode = "INVALID_REQUEST_DATA"
	ErrNotFound                   ErrorCode = "NOT_FOUND"
	ErrAlreadyExists              ErrorCode = "ALREADY_EXISTS"
	ErrSlotUnavailable            ErrorCode = "SLOT_UNAVAILABLE"
	ErrBookingNotCancellable      ErrorCode = "BOOKING_NOT_CANCELLABLE"
	ErrUnauthorized               ErrorCode = "UNAUTHORIZED"
	ErrForbidden                  ErrorCode = "FORBIDDEN"
	ErrTokenExpired               ErrorCode = "TOKEN_EXPIRED"
	ErrInvalidTokenFormat         ErrorCode = "INVALID_TOKEN_FORMAT"
	ErrMissingAuthorizationHeader ErrorCode = "MISSING_AUTHORIZATION_HEADER"
)

// AppError is the application-level error carried from services to controllers
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
