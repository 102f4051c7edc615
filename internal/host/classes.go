package host

import (
	"path"

	"github.com/hrasity/pcd/internal/schema"
)

// Class is the host-side implementation of a [schema.Class] handle.
type Class struct {
	name string
	host *Host
}

// Name returns the class name as registered with the host.
func (c *Class) Name() string {
	return c.name
}

// Node is the host-side implementation of a [schema.Node] handle.
type Node struct {
	path  string
	num   schema.DeviceNumber
	class *Class
}

// Path returns the path under which sessions can be opened.
func (n *Node) Path() string {
	return n.path
}

// Number returns the device number the node resolves to.
func (n *Node) Number() schema.DeviceNumber {
	return n.num
}

// CreateClass publishes a device class under the given name.
func (h *Host) CreateClass(name string) (schema.Class, error) {
	if name == "" {
		return nil, ErrInvalidAllocation
	}

	h.Lock()
	defer h.Unlock()

	if _, ok := h.classes[name]; ok {
		return nil, ErrAlreadyRegistered
	}

	class := &Class{name: name, host: h}
	h.classes[name] = class

	return class, nil
}

// DestroyClass removes a published class. Destroying a class that still
// carries nodes fails, enforcing node-before-class teardown order.
func (h *Host) DestroyClass(class schema.Class) error {
	hc, ok := class.(*Class)
	if !ok || hc.host != h {
		return ErrForeignHandle
	}

	h.Lock()
	defer h.Unlock()

	if _, ok := h.classes[hc.name]; !ok {
		return ErrNotRegistered
	}

	for _, node := range h.nodes {
		if node.class == hc {
			return ErrClassBusy
		}
	}

	delete(h.classes, hc.name)

	return nil
}

// CreateNode publishes a device node under the class, reachable through
// a fixed path in the [DevDir] namespace.
func (h *Host) CreateNode(class schema.Class, num schema.DeviceNumber, name string) (schema.Node, error) {
	hc, ok := class.(*Class)
	if !ok || hc.host != h {
		return nil, ErrForeignHandle
	}
	if name == "" {
		return nil, ErrInvalidAllocation
	}

	h.Lock()
	defer h.Unlock()

	if _, ok := h.classes[hc.name]; !ok {
		return nil, ErrNotRegistered
	}

	nodePath := path.Join(DevDir, name)
	if _, ok := h.nodes[nodePath]; ok {
		return nil, ErrAlreadyRegistered
	}

	node := &Node{path: nodePath, num: num, class: hc}
	h.nodes[nodePath] = node

	return node, nil
}

// DestroyNode removes a published node.
func (h *Host) DestroyNode(node schema.Node) error {
	hn, ok := node.(*Node)
	if !ok || hn.class == nil || hn.class.host != h {
		return ErrForeignHandle
	}

	h.Lock()
	defer h.Unlock()

	if _, ok := h.nodes[hn.path]; !ok {
		return ErrNotRegistered
	}

	delete(h.nodes, hn.path)

	return nil
}

// PublishedNodes returns how many device nodes are currently published.
func (h *Host) PublishedNodes() int {
	h.Lock()
	defer h.Unlock()

	return len(h.nodes)
}

// PublishedClasses returns how many device classes are currently
// published.
func (h *Host) PublishedClasses() int {
	h.Lock()
	defer h.Unlock()

	return len(h.classes)
}
