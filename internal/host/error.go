package host

import "errors"

var (
	// ErrInvalidAllocation is an error that occurs when a registration is
	// requested with an empty name or a zero count, or when a release
	// does not match the booked range size.
	ErrInvalidAllocation = errors.New("invalid allocation request")

	// ErrAlreadyRegistered is an error that occurs when a number, class
	// or node is registered twice.
	ErrAlreadyRegistered = errors.New("already registered")

	// ErrNotRegistered is an error that occurs when an unknown number,
	// class or node is referenced.
	ErrNotRegistered = errors.New("not registered")

	// ErrNilFileOperations is an error that occurs when a device is added
	// to the dispatch table without file operations.
	ErrNilFileOperations = errors.New("nil file operations")

	// ErrClassBusy is an error that occurs when a class with live nodes
	// is destroyed out of order.
	ErrClassBusy = errors.New("class still has published nodes")

	// ErrForeignHandle is an error that occurs when a handle from a
	// different host (or a nil handle) is passed in.
	ErrForeignHandle = errors.New("handle not issued by this host")

	// ErrNoSuchNode is an error that occurs when an open references an
	// unpublished node path.
	ErrNoSuchNode = errors.New("no such device node")
)
