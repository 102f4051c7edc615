package schema

// Class is an opaque handle to a published device class.
type Class interface {
	// Name returns the class name as registered with the host.
	Name() string
}

// Node is an opaque handle to a published device node.
type Node interface {
	// Path returns the path under which sessions can be opened.
	Path() string

	// Number returns the device number the node resolves to.
	Number() DeviceNumber
}

// NumberAllocator hands out and reclaims device number ranges. It is one
// of the host collaborators the registration chain drives.
type NumberAllocator interface {
	// AllocateNumber reserves count consecutive minors under a free major
	// and returns the first number of the range.
	AllocateNumber(name string, count uint32) (DeviceNumber, error)

	// ReleaseNumber returns a previously allocated range to the pool.
	ReleaseNumber(num DeviceNumber, count uint32) error
}

// DispatchTable maps registered device numbers to their file operations.
type DispatchTable interface {
	// AddDevice registers fops for the given number, making the device
	// reachable for dispatch.
	AddDevice(num DeviceNumber, fops FileOperations) error

	// RemoveDevice deregisters the given number.
	RemoveDevice(num DeviceNumber) error
}

// ClassRegistry publishes device classes and the nodes beneath them.
type ClassRegistry interface {
	// CreateClass publishes a device class under the given name.
	CreateClass(name string) (Class, error)

	// DestroyClass removes a published class. Classes with live nodes
	// cannot be destroyed.
	DestroyClass(class Class) error

	// CreateNode publishes a device node under the class, resolving to
	// the given number.
	CreateNode(class Class, num DeviceNumber, name string) (Node, error)

	// DestroyNode removes a published node.
	DestroyNode(node Node) error
}
