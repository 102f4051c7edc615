package device

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

var (
	// ErrInvalidArgument is an error that occurs when a seek uses an
	// unsupported whence mode or would leave the cursor out of bounds.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoSpace is an error that occurs when a write is requested at or
	// beyond the end of the device capacity.
	ErrNoSpace = errors.New("no space left on device")

	// ErrBadAddress is an error that occurs when the caller-supplied
	// memory region could not be accessed for a copy.
	ErrBadAddress = errors.New("bad address")
)

// newOpError wraps a sentinel error with the failing operation and
// device name, keeping the sentinel reachable through [errors.Is].
func newOpError(op string, name string, err error) error {
	return fmt.Errorf("(device) %s %s: %w", op, name, err)
}

// Errno maps a device error to the errno a character device would report
// for it. Unrecognized errors map to EIO; nil maps to zero.
func Errno(err error) unix.Errno {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInvalidArgument):
		return unix.EINVAL
	case errors.Is(err, ErrNoSpace):
		return unix.ENOSPC
	case errors.Is(err, ErrBadAddress):
		return unix.EFAULT
	default:
		return unix.EIO
	}
}
