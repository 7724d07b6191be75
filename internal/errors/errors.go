package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserExists is returned when registering a username that is taken.
	ErrUserExists = errors.New("username already exists")
	// ErrTrainNotFound is returned when a train number is not in the schedule.
	ErrTrainNotFound = errors.New("train not found")
	// ErrSeatNotFound is returned when a (train, seat) pair has no row.
	ErrSeatNotFound = errors.New("seat not found")
	// ErrSeatTaken is returned when the targeted seat is already reserved.
	ErrSeatTaken = errors.New("seat already reserved")
)

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUserExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_EXISTS")
	case errors.Is(err, ErrTrainNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TRAIN_NOT_FOUND")
	case errors.Is(err, ErrSeatNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SEAT_NOT_FOUND")
	case errors.Is(err, ErrSeatTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "SEAT_TAKEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
