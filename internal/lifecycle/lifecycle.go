// Package lifecycle implements the registration chain that makes a
// device reachable as a file: allocate a device number, bind the file
// operations, register them for dispatch, publish a class and publish a
// node beneath it. Every successful stage arms a teardown guard; the
// guards run in strict reverse order on a later stage failure and on
// unload, so the device is never left observably half-registered.
package lifecycle

import (
	"fmt"
	"log/slog"

	"github.com/hrasity/pcd/internal/schema"
)

// Registrar drives the staged registration of one device against the
// host providers. Load and Unload are expected to run single-threaded at
// load and unload time.
type Registrar struct {
	name string
	fops schema.FileOperations

	allocator schema.NumberAllocator
	dispatch  schema.DispatchTable
	classes   schema.ClassRegistry

	num    schema.DeviceNumber
	hasNum bool
	class  schema.Class
	node   schema.Node

	// guards holds the armed teardown actions in acquisition order.
	guards []func()

	loaded bool
}

// NewRegistrar returns a pointer to a new [Registrar] for the given
// device name and file operations.
func NewRegistrar(name string, fops schema.FileOperations,
	allocator schema.NumberAllocator,
	dispatch schema.DispatchTable,
	classes schema.ClassRegistry,
) *Registrar {
	return &Registrar{
		name:      name,
		fops:      fops,
		allocator: allocator,
		dispatch:  dispatch,
		classes:   classes,
	}
}

// Loaded returns whether the device is currently fully registered.
func (r *Registrar) Loaded() bool {
	return r.loaded
}

// Number returns the allocated device number, valid while loaded.
func (r *Registrar) Number() schema.DeviceNumber {
	return r.num
}

// NodePath returns the published node path, or "" while not loaded.
func (r *Registrar) NodePath() string {
	if r.node == nil {
		return ""
	}

	return r.node.Path()
}

// Load executes the registration stages in order. When a stage fails,
// the guards of all prior stages run in reverse before the stage error
// propagates; a failed Load leaves nothing registered.
func (r *Registrar) Load() error {
	if r.loaded {
		return fmt.Errorf("(lifecycle) load %s: %w", r.name, ErrAlreadyLoaded)
	}

	slog.Info("Loading device driver.", "device", r.name)

	if err := r.allocateNumber(); err != nil {
		return r.failLoad("allocate device number", err)
	}

	// Binding the operation table needs no host call of its own: the
	// dispatch registration below carries it, and its teardown rides on
	// the number release.
	slog.Info("Operation table bound.", "device", r.name, "number", r.num)

	if err := r.registerDispatch(); err != nil {
		return r.failLoad("register dispatch", err)
	}

	if err := r.publishClass(); err != nil {
		return r.failLoad("create device class", err)
	}

	if err := r.publishNode(); err != nil {
		return r.failLoad("create device node", err)
	}

	r.loaded = true

	slog.Info("Device driver loaded.",
		"device", r.name, "number", r.num, "node", r.node.Path())

	return nil
}

// Unload runs the armed teardown guards in reverse order. Each guard is
// preceded by an existence check when it is armed, so unloading after a
// failed Load (which already unwound) is a safe no-op.
func (r *Registrar) Unload() {
	slog.Info("Unloading device driver.", "device", r.name)

	r.unwind()
	r.loaded = false

	slog.Info("Device driver unloaded.", "device", r.name)
}

// failLoad unwinds the armed guards and wraps the failing stage error.
func (r *Registrar) failLoad(stage string, err error) error {
	slog.Error("Load stage failed, unwinding prior stages.",
		"device", r.name, "stage", stage, "err", err)

	r.unwind()

	return fmt.Errorf("(lifecycle) %s for %s: %w", stage, r.name, err)
}

// unwind pops and runs the teardown guards in reverse acquisition order.
func (r *Registrar) unwind() {
	for i := len(r.guards) - 1; i >= 0; i-- {
		r.guards[i]()
	}
	r.guards = r.guards[:0]
}

func (r *Registrar) allocateNumber() error {
	num, err := r.allocator.AllocateNumber(r.name+"_devices", 1)
	if err != nil {
		return err
	}

	r.num = num
	r.hasNum = true
	r.guards = append(r.guards, func() {
		if !r.hasNum {
			return
		}
		if err := r.allocator.ReleaseNumber(r.num, 1); err != nil {
			slog.Warn("Failed to release device number.",
				"device", r.name, "number", r.num, "err", err)
		}
		r.hasNum = false

		slog.Info("Device number released.", "device", r.name)
	})

	slog.Info("Device number allocated.", "device", r.name, "number", num)

	return nil
}

func (r *Registrar) registerDispatch() error {
	if err := r.dispatch.AddDevice(r.num, r.fops); err != nil {
		return err
	}

	registered := true
	r.guards = append(r.guards, func() {
		if !registered {
			return
		}
		if err := r.dispatch.RemoveDevice(r.num); err != nil {
			slog.Warn("Failed to remove dispatch registration.",
				"device", r.name, "number", r.num, "err", err)
		}
		registered = false

		slog.Info("Dispatch registration removed.", "device", r.name)
	})

	slog.Info("Device registered for dispatch.", "device", r.name)

	return nil
}

func (r *Registrar) publishClass() error {
	class, err := r.classes.CreateClass(r.name + "_class")
	if err != nil {
		return err
	}

	r.class = class
	r.guards = append(r.guards, func() {
		if r.class == nil {
			return
		}
		if err := r.classes.DestroyClass(r.class); err != nil {
			slog.Warn("Failed to destroy device class.",
				"device", r.name, "err", err)
		}
		r.class = nil

		slog.Info("Device class destroyed.", "device", r.name)
	})

	slog.Info("Device class created.", "device", r.name, "class", class.Name())

	return nil
}

func (r *Registrar) publishNode() error {
	node, err := r.classes.CreateNode(r.class, r.num, r.name)
	if err != nil {
		return err
	}

	r.node = node
	r.guards = append(r.guards, func() {
		if r.node == nil {
			return
		}
		if err := r.classes.DestroyNode(r.node); err != nil {
			slog.Warn("Failed to destroy device node.",
				"device", r.name, "err", err)
		}
		r.node = nil

		slog.Info("Device node destroyed.", "device", r.name)
	})

	slog.Info("Device node created.", "device", r.name, "node", node.Path())

	return nil
}
