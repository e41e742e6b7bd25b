package ambiguity

import "errors"

var (
	// ErrInvalidInput is returned when a line breaks the digits-and-single-spaces precondition
	ErrInvalidInput = errors.New("invalid input")

	// ErrInputTooLarge is returned when a line exceeds the configured expansion limits
	ErrInputTooLarge = errors.New("input too large")
)
