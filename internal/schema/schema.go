// Package schema defines the contracts between the device core and its
// host environment: the file operation dispatch table, the per-session
// cursor, user-space memory regions and the registration provider
// interfaces. Everything else in the module is mockable through these.
package schema

import "fmt"

// Whence selects the reference point for a [FileOperations.Seek] call.
// The values match [io.SeekStart], [io.SeekCurrent] and [io.SeekEnd], so
// handles built on top of a [FileOperations] can satisfy [io.Seeker].
type Whence int

const (
	// SeekSet positions relative to the start of the device.
	SeekSet Whence = 0

	// SeekCur positions relative to the current cursor.
	SeekCur Whence = 1

	// SeekEnd positions relative to the device capacity.
	SeekEnd Whence = 2
)

// String returns the conventional name of the whence mode.
func (w Whence) String() string {
	switch w {
	case SeekSet:
		return "set"
	case SeekCur:
		return "cur"
	case SeekEnd:
		return "end"
	default:
		return fmt.Sprintf("whence(%d)", int(w))
	}
}

// Session is the per-open-file state threaded through every file
// operation. It is allocated and owned by the host (or any other caller)
// and passed by pointer, so the cursor mutates in place.
//
// Pos holds the cursor and is kept within [0, capacity] between calls by
// the file operations themselves. Nothing synchronizes a Session shared
// across goroutines.
type Session struct {
	Pos int64
}

// DeviceNumber identifies a registered device within the host.
type DeviceNumber struct {
	Major uint32
	Minor uint32
}

// String formats the number in the usual major:minor notation.
func (n DeviceNumber) String() string {
	return fmt.Sprintf("%d:%d", n.Major, n.Minor)
}

// FileOperations is the dispatch table a device binds into the host. The
// host allocates a [Session] per open handle and threads it through every
// call; the device never retains it.
type FileOperations interface {
	// Open accepts a new session.
	Open(sess *Session) error

	// Read transfers up to count bytes from the device at the session
	// cursor into dst, returning the number of bytes transferred. A zero
	// return with a nil error signals end-of-device.
	Read(sess *Session, dst UserBuffer, count int) (int, error)

	// Write transfers up to count bytes from src into the device at the
	// session cursor, returning the number of bytes transferred.
	Write(sess *Session, src UserBuffer, count int) (int, error)

	// Seek repositions the session cursor and returns the new absolute
	// position.
	Seek(sess *Session, offset int64, whence Whence) (int64, error)

	// Release tears down a session.
	Release(sess *Session) error
}
