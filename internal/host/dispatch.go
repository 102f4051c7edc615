package host

import (
	"github.com/hrasity/pcd/internal/schema"
)

// AddDevice registers the file operations under the given number, making
// the device dispatchable. Numbers must have been allocated first and can
// only carry one dispatch entry.
func (h *Host) AddDevice(num schema.DeviceNumber, fops schema.FileOperations) error {
	if fops == nil {
		return ErrNilFileOperations
	}

	h.Lock()
	defer h.Unlock()

	if _, ok := h.majors[num.Major]; !ok {
		return ErrNotRegistered
	}
	if _, ok := h.devices[num]; ok {
		return ErrAlreadyRegistered
	}

	h.devices[num] = fops

	return nil
}

// RemoveDevice deregisters the given number from dispatch.
func (h *Host) RemoveDevice(num schema.DeviceNumber) error {
	h.Lock()
	defer h.Unlock()

	if _, ok := h.devices[num]; !ok {
		return ErrNotRegistered
	}

	delete(h.devices, num)

	return nil
}

// RegisteredDevices returns how many dispatch entries are currently held.
func (h *Host) RegisteredDevices() int {
	h.Lock()
	defer h.Unlock()

	return len(h.devices)
}
