package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUpstream     = errors.New("reddit responded with an unexpected status")
	ErrParse        = errors.New("couldn't parse reddit response")
	ErrRequest      = errors.New("error performing request to reddit api")
)

// StatusError is returned when reddit answers with a non-2xx status code.
type StatusError struct {
	StatusCode int
}

func (se *StatusError) Error() string {
	return fmt.Sprintf("%s: HTTP %d %s", ErrUpstream, se.StatusCode, http.StatusText(se.StatusCode))
}

func (se *StatusError) Unwrap() error {
	return ErrUpstream
}
