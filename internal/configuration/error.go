package configuration

import "errors"

var (
	// ErrInvalidCapacity is an error that occurs when the configured
	// capacity is not a positive integer.
	ErrInvalidCapacity = errors.New("invalid capacity setting")

	// ErrInvalidLogLevel is an error that occurs when the configured log
	// level is not one of debug, info, warn or error.
	ErrInvalidLogLevel = errors.New("invalid log level setting")
)
