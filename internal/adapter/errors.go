package adapter

import "errors"

var (
	ErrEmptyAddress        = errors.New("empty stats api address")
	ErrInvalidAddress      = errors.New("invalid stats api address")
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrTooManyRequests     = errors.New("too many requests")
)
