package host

import (
	"fmt"
	"io"
	"path"

	"github.com/hrasity/pcd/internal/schema"
)

// OpenFile is an open handle onto a published device node. It owns a
// [schema.Session] and dispatches every call through the registered file
// operations, so ordinary Go code can drive a device through the
// standard [io.Reader], [io.Writer], [io.Seeker] and [io.Closer]
// interfaces.
type OpenFile struct {
	fops schema.FileOperations
	sess schema.Session
	path string
}

// Open resolves the given node path and opens a new session against the
// device behind it.
func (h *Host) Open(nodePath string) (*OpenFile, error) {
	h.Lock()
	node, ok := h.nodes[path.Clean(nodePath)]
	if !ok {
		h.Unlock()

		return nil, fmt.Errorf("(host) open %s: %w", nodePath, ErrNoSuchNode)
	}

	fops, ok := h.devices[node.num]
	h.Unlock()

	if !ok {
		return nil, fmt.Errorf("(host) open %s: %w", nodePath, ErrNotRegistered)
	}

	file := &OpenFile{fops: fops, path: node.path}
	if err := fops.Open(&file.sess); err != nil {
		return nil, fmt.Errorf("(host) open %s: %w", nodePath, err)
	}

	return file, nil
}

// Path returns the node path the handle was opened from.
func (f *OpenFile) Path() string {
	return f.path
}

// Pos returns the current session cursor.
func (f *OpenFile) Pos() int64 {
	return f.sess.Pos
}

// Read implements [io.Reader]. The device's zero-transfer end-of-device
// signal is translated to [io.EOF].
func (f *OpenFile) Read(p []byte) (int, error) {
	n, err := f.fops.Read(&f.sess, schema.Bytes(p), len(p))
	if err != nil {
		return n, fmt.Errorf("(host) read %s: %w", f.path, err)
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}

	return n, nil
}

// Write implements [io.Writer].
func (f *OpenFile) Write(p []byte) (int, error) {
	n, err := f.fops.Write(&f.sess, schema.Bytes(p), len(p))
	if err != nil {
		return n, fmt.Errorf("(host) write %s: %w", f.path, err)
	}

	return n, nil
}

// Seek implements [io.Seeker]. The whence values of the [io] package map
// directly onto [schema.Whence].
func (f *OpenFile) Seek(offset int64, whence int) (int64, error) {
	pos, err := f.fops.Seek(&f.sess, offset, schema.Whence(whence))
	if err != nil {
		return 0, fmt.Errorf("(host) seek %s: %w", f.path, err)
	}

	return pos, nil
}

// Close implements [io.Closer], releasing the session.
func (f *OpenFile) Close() error {
	if err := f.fops.Release(&f.sess); err != nil {
		return fmt.Errorf("(host) close %s: %w", f.path, err)
	}

	return nil
}
