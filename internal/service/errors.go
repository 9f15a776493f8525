package service

import "errors"

var (
	// ErrInvalidInput is wrapped by every validation failure.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownTag means an operation referenced a tag id that is not stored.
	ErrUnknownTag = errors.New("unknown tag")
)
