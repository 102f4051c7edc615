// Package device implements the I/O state machine of the pseudo
// character device: position-tracked, bounds-checked read, write and
// seek over a fixed-capacity [storage.Buffer], dispatched through the
// [schema.FileOperations] table.
package device

import (
	"log/slog"

	"github.com/hrasity/pcd/internal/schema"
	"github.com/hrasity/pcd/internal/storage"
)

// Handler is the principal implementation of [schema.FileOperations]
// for a pseudo character device.
//
// The handler performs no locking: concurrent callers sharing a Handler
// race on the buffer, and callers sharing a [schema.Session] race on the
// cursor as well. Arbitration between simultaneous openers is a
// deliberate non-feature and left to the caller.
type Handler struct {
	name string
	buf  *storage.Buffer
}

// NewHandler returns a pointer to a new device [Handler] operating over
// the given arena.
func NewHandler(name string, buf *storage.Buffer) *Handler {
	return &Handler{
		name: name,
		buf:  buf,
	}
}

// Name returns the device name the handler was created with.
func (h *Handler) Name() string {
	return h.name
}

// Capacity returns the fixed capacity of the underlying arena.
func (h *Handler) Capacity() int64 {
	return h.buf.Capacity()
}

// Open accepts any session; it never fails and mutates nothing.
func (h *Handler) Open(sess *schema.Session) error {
	slog.Debug("Device opened.", "device", h.name, "pos", sess.Pos)

	return nil
}

// Release tears down a session; it never fails.
func (h *Handler) Release(sess *schema.Session) error {
	slog.Debug("Device released.", "device", h.name, "pos", sess.Pos)

	return nil
}

// Read transfers up to count bytes from the arena at the session cursor
// into dst. The count is clamped to what remains before the end of the
// device; a fully clamped read returns (0, nil) as the end-of-device
// signal. The cursor only advances after a successful copy-out.
func (h *Handler) Read(sess *schema.Session, dst schema.UserBuffer, count int) (int, error) {
	slog.Debug("Device read requested.",
		"device", h.name, "pos", sess.Pos, "count", count)

	effective := clamp(int64(count), sess.Pos, h.buf.Capacity())
	if effective <= 0 {
		slog.Debug("Nothing left to read.", "device", h.name, "pos", sess.Pos)

		return 0, nil
	}

	view, err := h.buf.Range(sess.Pos, effective)
	if err != nil {
		return 0, newOpError("read", h.name, err)
	}

	if err := dst.CopyOut(view); err != nil {
		slog.Error("Failed to copy data out to the caller region.",
			"device", h.name, "pos", sess.Pos, "err", err)

		return 0, newOpError("read", h.name, ErrBadAddress)
	}

	sess.Pos += effective

	slog.Debug("Device read complete.",
		"device", h.name, "transferred", effective, "pos", sess.Pos)

	return int(effective), nil
}

// Write transfers up to count bytes from src into the arena at the
// session cursor, clamped against the remaining capacity. Unlike Read, a
// fully clamped write is an error: callers must be able to tell "device
// full" apart from "nothing more to read". The cursor only advances
// after a successful copy-in.
func (h *Handler) Write(sess *schema.Session, src schema.UserBuffer, count int) (int, error) {
	slog.Debug("Device write requested.",
		"device", h.name, "pos", sess.Pos, "count", count)

	effective := clamp(int64(count), sess.Pos, h.buf.Capacity())
	if effective <= 0 {
		slog.Error("No space left to write.", "device", h.name, "pos", sess.Pos)

		return 0, newOpError("write", h.name, ErrNoSpace)
	}

	view, err := h.buf.Range(sess.Pos, effective)
	if err != nil {
		return 0, newOpError("write", h.name, err)
	}

	if err := src.CopyIn(view); err != nil {
		slog.Error("Failed to copy data in from the caller region.",
			"device", h.name, "pos", sess.Pos, "err", err)

		return 0, newOpError("write", h.name, ErrBadAddress)
	}

	sess.Pos += effective

	slog.Debug("Device write complete.",
		"device", h.name, "transferred", effective, "pos", sess.Pos)

	return int(effective), nil
}

// Seek repositions the session cursor within [0, capacity] and returns
// the new absolute position. Unknown whence modes and out-of-bounds
// candidates fail without touching the cursor.
func (h *Handler) Seek(sess *schema.Session, offset int64, whence schema.Whence) (int64, error) {
	slog.Debug("Device seek requested.",
		"device", h.name, "pos", sess.Pos, "offset", offset, "whence", whence.String())

	var candidate int64

	switch whence {
	case schema.SeekSet:
		candidate = offset
	case schema.SeekCur:
		candidate = sess.Pos + offset
	case schema.SeekEnd:
		candidate = h.buf.Capacity() + offset
	default:
		return 0, newOpError("seek", h.name, ErrInvalidArgument)
	}

	if candidate < 0 || candidate > h.buf.Capacity() {
		slog.Error("Seek position out of bounds.",
			"device", h.name, "candidate", candidate, "capacity", h.buf.Capacity())

		return 0, newOpError("seek", h.name, ErrInvalidArgument)
	}

	sess.Pos = candidate

	slog.Debug("Device seek complete.", "device", h.name, "pos", sess.Pos)

	return sess.Pos, nil
}

// clamp reduces a requested transfer length so it does not run past the
// end of the device. The comparison works on the remaining capacity
// rather than pos+count, which could overflow for huge counts. The
// result can be zero or negative when the cursor already sits at or
// beyond capacity.
func clamp(count, pos, capacity int64) int64 {
	if available := capacity - pos; count > available {
		return available
	}

	return count
}
