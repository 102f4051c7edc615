// Package storage implements the fixed-capacity memory arena backing a
// pseudo device. A [Buffer] is explicitly owned by whoever creates it and
// passed by reference into the file operations, so independent device
// instances carry independent arenas.
package storage

// DefaultCapacity is the arena size used when no capacity is configured.
const DefaultCapacity = 512

// Buffer is a fixed-capacity, zero-initialized byte arena. Its only
// operations are bounds-checked range views; all higher-level policy
// (clamping, cursors) lives with the callers.
type Buffer struct {
	data []byte
}

// New returns a pointer to a new zero-filled [Buffer] of the given
// capacity.
func New(capacity int) (*Buffer, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Buffer{data: make([]byte, capacity)}, nil
}

// Capacity returns the fixed byte capacity of the arena.
func (b *Buffer) Capacity() int64 {
	return int64(len(b.data))
}

// Range returns a mutable view of [start, start+length). Requests outside
// the arena fail; callers are expected to have clamped beforehand. The
// length is checked against the space behind start, so huge values cannot
// overflow past the bounds check.
func (b *Buffer) Range(start, length int64) ([]byte, error) {
	if start < 0 || start > int64(len(b.data)) {
		return nil, ErrOutOfBounds
	}
	if length < 0 || length > int64(len(b.data))-start {
		return nil, ErrOutOfBounds
	}

	return b.data[start : start+length], nil
}
