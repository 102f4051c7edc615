package storage

import "errors"

var (
	// ErrInvalidCapacity is an error that occurs when a [Buffer] is
	// requested with a capacity of zero or less.
	ErrInvalidCapacity = errors.New("invalid capacity <= 0")

	// ErrOutOfBounds is an error that occurs when a requested range does
	// not lie fully within the arena.
	ErrOutOfBounds = errors.New("range outside of arena bounds")
)
