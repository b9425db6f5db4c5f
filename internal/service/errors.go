package service

import "errors"

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrAboutNotFound = errors.New("about page not found")
)

// ValidationError rejects caller input with a human-readable message.
// It is never retried; the caller must fix the request.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

// IsValidation reports whether err is a caller input rejection.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
