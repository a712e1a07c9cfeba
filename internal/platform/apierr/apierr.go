package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error attaches an HTTP status and a stable code to an underlying error.
type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	return fmt.Sprintf("api error (%d)", e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// WithMessage sets the text shown to the user in place of the raw error.
func (e *Error) WithMessage(msg string) *Error {
	e.Message = msg
	return e
}

// UserMessage is what the form shows; it never leaks upstream bodies.
func (e *Error) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

// As unwraps err into an *Error, defaulting to a 500.
func As(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return New(http.StatusInternalServerError, "internal_error", err)
}
