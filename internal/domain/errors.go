package domain

import "errors"

var (
	// ErrEmpty indicates a required field was left blank
	ErrEmpty = errors.New("value is required")

	// ErrNotPositiveNumber indicates the value is not a number greater than zero
	ErrNotPositiveNumber = errors.New("value must be a positive number")

	// ErrInvalidInteger indicates the value is not a whole number within the allowed minimum
	ErrInvalidInteger = errors.New("value must be a whole number")

	// ErrTooLarge indicates the value exceeds the field maximum
	ErrTooLarge = errors.New("value is too large")
)
