package event

import "errors"

var (
	ErrNotFound              = errors.New("event not found")
	ErrPastEvent             = errors.New("cannot register for past events")
	ErrDuplicateRegistration = errors.New("this email is already registered for the event")
	ErrCapacityExceeded      = errors.New("event has reached its registration capacity")
)

// ValidationError reports malformed or missing input. It maps to HTTP 400
// at the boundary.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
