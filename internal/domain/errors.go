package domain

import "errors"

var (
	ErrNotAuthenticated  = errors.New("no active session")
	ErrUnauthorized      = errors.New("session rejected by server")
	ErrTimeout           = errors.New("assistant request timed out")
	ErrServer            = errors.New("assistant server error")
	ErrMalformedResponse = errors.New("malformed assistant response")
	ErrCancelled         = errors.New("assistant request cancelled")
	ErrProfileNotFound   = errors.New("profile not found")
)
