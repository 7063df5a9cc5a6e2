package errors

import (
	stdErrors "errors"
)

type (
	CustomError interface {
		Code() int
		Error() string
	}

	customErrorString struct {
		c int
		s string
	}
)

func New(c int, s string) CustomError {
	return &customErrorString{
		c: c,
		s: s,
	}
}

func (e *customErrorString) Code() int {
	return e.c
}

func (e *customErrorString) Error() string {
	return e.s
}

// StatusCode returns the code carried by the first CustomError in err's
// chain, or fallback.
func StatusCode(err error, fallback int) int {
	var customErr CustomError
	if stdErrors.As(err, &customErr) {
		return customErr.Code()
	}
	return fallback
}
