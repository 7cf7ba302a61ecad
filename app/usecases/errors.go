package usecases

import "net/http"

// UseCaseError carries an HTTP status alongside a user-facing message so
// handlers can map business failures without inspecting error strings.
type UseCaseError struct {
	Code    int
	Message string
}

func (e *UseCaseError) Error() string {
	return e.Message
}

func NewValidationError(message string) *UseCaseError {
	return &UseCaseError{Code: http.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *UseCaseError {
	return &UseCaseError{Code: http.StatusNotFound, Message: message}
}

// NewPastDateError marks a reservation request whose slot already elapsed.
func NewPastDateError() *UseCaseError {
	return &UseCaseError{Code: http.StatusBadRequest, Message: "reservation date and time must be in the future"}
}

// NewCapacityExceededError marks a reservation request that would push an
// overlapping one-hour slot over capacity.
func NewCapacityExceededError() *UseCaseError {
	return &UseCaseError{Code: http.StatusConflict, Message: "this time slot is fully booked, please pick another time"}
}

func NewInternalError() *UseCaseError {
	return &UseCaseError{Code: http.StatusInternalServerError, Message: "internal server error"}
}
