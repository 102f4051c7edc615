package schema

import "errors"

// ErrRegionTooSmall is an error that occurs when a transfer would run past
// the end of the accessible [UserBuffer] region.
var ErrRegionTooSmall = errors.New("memory region too small for transfer")

// UserBuffer models a caller-supplied memory region on the far side of a
// copy, the way a driver sees user-space memory. Transfers into or out of
// the region can fail, which is what makes a "bad address" outcome
// reachable for the file operations.
type UserBuffer interface {
	// CopyOut transfers p into the region, starting at its beginning.
	CopyOut(p []byte) error

	// CopyIn fills p from the region, starting at its beginning.
	CopyIn(p []byte) error

	// Size returns the accessible length of the region in bytes.
	Size() int
}

// Bytes is the plain in-process implementation of a [UserBuffer], backed
// by an ordinary byte slice.
type Bytes []byte

// CopyOut transfers p into the slice. It fails without copying anything
// when p does not fit.
func (b Bytes) CopyOut(p []byte) error {
	if len(p) > len(b) {
		return ErrRegionTooSmall
	}
	copy(b, p)

	return nil
}

// CopyIn fills p from the slice. It fails without copying anything when
// the slice holds fewer than len(p) bytes.
func (b Bytes) CopyIn(p []byte) error {
	if len(p) > len(b) {
		return ErrRegionTooSmall
	}
	copy(p, b)

	return nil
}

// Size returns the length of the backing slice.
func (b Bytes) Size() int {
	return len(b)
}
