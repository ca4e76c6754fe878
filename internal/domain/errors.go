package domain

import "errors"

var (
	ErrNotFound      = errors.New("review not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrInvalidStatus = errors.New("invalid status")
)
