// Package host provides an in-memory host environment for pseudo
// devices: a device number allocator, a dispatch table, class and node
// registries and a VFS-style [Host.Open]. It implements the provider
// interfaces of [schema] the registration chain drives, standing in for
// the surrounding operating environment.
package host

import (
	"sync"

	"github.com/hrasity/pcd/internal/schema"
)

// DevDir is the namespace all published device nodes live under.
const DevDir = "/dev"

// majorBase is the first major handed out by the allocator, starting in
// the range conventionally reserved for local use.
const majorBase = 240

// numberRange books one allocated range: its owner name and how many
// minors it spans.
type numberRange struct {
	name  string
	count uint32
}

// Host is the principal in-memory implementation of the host-side
// provider contracts. The registry tables are guarded by a single mutex;
// the I/O dispatch path itself stays lock-free.
type Host struct {
	sync.Mutex

	majors  map[uint32]numberRange
	devices map[schema.DeviceNumber]schema.FileOperations
	classes map[string]*Class
	nodes   map[string]*Node

	nextMajor uint32
}

// New returns a pointer to a new empty [Host].
func New() *Host {
	return &Host{
		majors:    make(map[uint32]numberRange),
		devices:   make(map[schema.DeviceNumber]schema.FileOperations),
		classes:   make(map[string]*Class),
		nodes:     make(map[string]*Node),
		nextMajor: majorBase,
	}
}

// AllocateNumber reserves count consecutive minors under the next free
// major and returns the first number of the range.
func (h *Host) AllocateNumber(name string, count uint32) (schema.DeviceNumber, error) {
	if name == "" || count == 0 {
		return schema.DeviceNumber{}, ErrInvalidAllocation
	}

	h.Lock()
	defer h.Unlock()

	major := h.nextMajor
	for {
		if _, taken := h.majors[major]; !taken {
			break
		}
		major++
	}

	h.majors[major] = numberRange{name: name, count: count}
	h.nextMajor = major + 1

	return schema.DeviceNumber{Major: major, Minor: 0}, nil
}

// ReleaseNumber returns a previously allocated range to the pool. The
// count must match the booked range size.
func (h *Host) ReleaseNumber(num schema.DeviceNumber, count uint32) error {
	h.Lock()
	defer h.Unlock()

	rng, ok := h.majors[num.Major]
	if !ok {
		return ErrNotRegistered
	}
	if rng.count != count {
		return ErrInvalidAllocation
	}

	delete(h.majors, num.Major)

	return nil
}

// AllocatedNumbers returns how many number ranges are currently held.
func (h *Host) AllocatedNumbers() int {
	h.Lock()
	defer h.Unlock()

	return len(h.majors)
}
